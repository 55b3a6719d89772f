// Package fileio moves artifacts between the hufblob codec and the
// filesystem.
//
// CompressFile writes compressed.huff and DecompressFile writes
// decompressed.txt into a caller-chosen directory, creating it when missing.
// Output files are written to a temporary name and renamed into place, so a
// failed call never leaves a partial artifact behind.
//
// Every filesystem failure wraps errs.ErrIOUnavailable; codec failures keep
// their own sentinel (errs.ErrEmptyInput, errs.ErrTruncated, errs.ErrCorrupt).
package fileio
