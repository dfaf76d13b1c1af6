package config

// File represents the structure of the .batchstat configuration file.
// Every field is optional; unset fields keep the built-in defaults.
type File struct {
	// OutputDir is the directory results files are written to.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Format is the results file format: text, json or markdown.
	Format string `yaml:"format,omitempty"`

	// Encoding is the input text encoding label.
	Encoding string `yaml:"encoding,omitempty"`

	// Pretty enables indented JSON output.
	Pretty *bool `yaml:"pretty,omitempty"`
}

// Apply copies every set field of the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.Encoding != "" {
		cfg.Encoding = f.Encoding
	}
	if f.Pretty != nil {
		cfg.Pretty = *f.Pretty
	}
}
