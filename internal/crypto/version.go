package crypto

// Version is the closed set of payload versions understood by the codec.
// New versions are added here and handled in every switch over Version;
// the meaning of V1 never changes.
type Version int

const (
	// VersionUnknown is any tag this build cannot decode.
	VersionUnknown Version = iota

	// V1 is AES-256-GCM, 12-byte random nonce, 16-byte tag, no associated data.
	V1
)

// CurrentVersion is the version used for every new payload.
const CurrentVersion = V1

// ParseVersion maps a wire tag to a [Version]. Unknown tags map to
// [VersionUnknown].
func ParseVersion(tag string) Version {
	switch tag {
	case "v1":
		return V1
	default:
		return VersionUnknown
	}
}

// String returns the wire tag of v.
func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	default:
		return "unknown"
	}
}
