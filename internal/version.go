package internal

// Version is the current prosody release version.
const Version = "0.1.0"
