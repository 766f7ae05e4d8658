package version

// Current defines the application version.
// It defaults to the tagged release but can be overwritten at build time using -ldflags.
var Current = "v1.0.0"

const AppName = "ddenum"
const Author = "l0lsec"
