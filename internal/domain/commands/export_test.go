package commands

// GeneratePRContent exports generatePRContent for testing.
var GeneratePRContent = generatePRContent //nolint:gochecknoglobals // test export

// DiffFile exports diffFile for testing.
var DiffFile = diffFile //nolint:gochecknoglobals // test export
