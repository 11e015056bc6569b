// Package archive exports generated images from the history into a zip
// file on disk, decoding each entry's base64 data URI into a regular image
// file.
package archive
