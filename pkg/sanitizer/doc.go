// Package sanitizer masks personal data before it reaches logs or other
// output that is not meant to carry it in full.
//
//	sanitizer.MaskEmail("user@example.com") // u***@example.com
//	sanitizer.MaskSecret("hunter22")        // ********
package sanitizer
