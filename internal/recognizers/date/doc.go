// Package date recognizes calendar dates written in the formats listed
// by a language's rule table.
//
// Every rule runs over the full document text. A match is dropped when the
// character after it is a digit, when its rule forbids a preceding digit
// and one is present, when it is not a valid calendar date, or when its
// offsets do not fall on token boundaries.
//
// Written month names are replaced by their month number before parsing,
// so no locale data is needed. Two-digit years use a fixed pivot:
// 69-99 map to 1969-1999 and 00-68 to 2000-2068.
package date
