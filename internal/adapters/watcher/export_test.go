package watcher

// ConvertEventExported exposes convertEvent for white-box tests.
var ConvertEventExported = convertEvent
