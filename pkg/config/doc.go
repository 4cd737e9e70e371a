// Package config loads application configuration from environment variables
// and optional YAML files.
//
// Load parses the environment into any struct annotated with `env` tags
// (github.com/caarlos0/env/v11). The first call loads a .env file from the
// working directory when one exists (github.com/joho/godotenv). Each
// configuration type is parsed once and cached for the lifetime of the
// process; Reset clears the cache in tests.
//
// LoadFile decodes a YAML document (gopkg.in/yaml.v3) into a struct with
// `yaml` tags and rejects unknown keys. It is used for settings that are
// awkward to express as environment variables, such as message catalogs.
package config
