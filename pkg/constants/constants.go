package constants

// CLIName is the name used in user-facing output to refer to the tool
const CLIName = "yamldiff"

// Separator divides the left and right columns in rendered output
const Separator = "<->"

// DefaultColumnWidth is the per-side column width used when the terminal
// width cannot be determined
const DefaultColumnWidth = 40

// MinColumnWidth is the narrowest a side column is allowed to get on
// small terminals
const MinColumnWidth = 20
