package common

const (
	// IRFileExtension is the file extension for textual IR listings.
	IRFileExtension = ".eir"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "econ.toml"

	// EconVersion is the current version of the econ toolchain.
	EconVersion = "0.1.0"
)
