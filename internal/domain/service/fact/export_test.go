package fact

var FetchTotal = fetchTotal //nolint:gochecknoglobals
