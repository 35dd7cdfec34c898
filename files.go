package carpagent

// ConfigFileName is the fixed-name configuration file looked up in the
// working directory at startup.
const ConfigFileName = "config.toml"
