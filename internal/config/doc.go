// Package config defines the application's configuration structures and the
// viper-based loader that populates them from file and environment sources.
package config
