package config

// DefaultLocale is the locale of the canonical display strings
const DefaultLocale = "en"
