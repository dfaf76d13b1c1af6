// Package convert renders numbers as signed 64-bit integers in binary and
// hexadecimal text.
//
// Values are truncated toward zero before conversion, so -2.7 becomes -2.
// Renderings carry a "0b" or "0x" prefix and a leading minus sign for
// negative values: 10 is "0b1010" and "0xa", -10 is "-0b1010" and "-0xa".
package convert
