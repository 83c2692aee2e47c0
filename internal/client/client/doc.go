// Package client talks to the file backend over HTTP.
//
// Every failure leaving HTTPClient is an *Error carrying one human-readable
// message. Uploads map each failure to a specific message (see UploadMessage);
// listing and deleting collapse every failure to a generic one and log the
// detail.
package client
