package models

// ContentAddress is the deterministic location of a note's content blob.
type ContentAddress struct {
	// Path is "{userID}/{noteID}.{ext}" inside the bucket.
	Path string

	// Reference is "storage://{bucket}/{Path}", the value stored in the
	// content field of the metadata row.
	Reference string
}

// KeyResponse is the body returned by the key service.
type KeyResponse struct {
	// Key is the standard-base64 encoding of the 32 raw key bytes.
	Key string `json:"key"`
}
