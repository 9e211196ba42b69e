// Package units converts between sized-value text such as "4K" or "512" and
// integer byte counts. Units are binary multiples: K=1024, M=1024², G=1024³.
package units
