// Package catalog defines the catalog item record and the sources it is
// loaded from.
//
// # Overview
//
// A catalog is a JSON array of title records. marquee reads it exactly once
// per load attempt, either over HTTP or from a local file, and hands the
// decoded slice to the state package. Nothing is ever written back.
//
// # Payload Format
//
//	[
//	  {
//	    "id": 1,
//	    "title": "Inception",
//	    "year": 2010,
//	    "genre": "Action, Sci-Fi",
//	    "rating": 8.8,
//	    "description": "A thief who steals corporate secrets...",
//	    "poster": "https://example.com/posters/inception.jpg"
//	  }
//	]
//
// Comments and trailing commas are accepted so a hand-maintained catalog
// file can be annotated. The top level must be an array, and ids must be
// unique within the payload.
//
// # Sources
//
//   - HTTPSource: GET with Accept: application/json and a 10 second timeout
//   - FileSource: plain path or file:// URL
//
// NewSource picks one based on the location string.
//
// # Error Handling
//
// Every failure is a *LoadError with one of two kinds:
//
//   - KindTransport: unreachable host, non-2xx status, unreadable file
//   - KindParse: empty payload, non-array payload, type mismatch, duplicate id
//
// Callers test the kind with errors.Is(err, catalog.ErrTransport) or
// errors.Is(err, catalog.ErrParse).
package catalog
