// Package config handles application configuration loading and validation.
// Settings come from an optional YAML file with environment variables
// (TASKBOARD_ prefix) taking precedence, and every loaded Config passes
// struct-tag validation before the application sees it.
package config
