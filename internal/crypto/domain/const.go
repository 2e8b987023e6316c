package domain

// HashAlgorithm identifies the one-way function applied to credentials before storage.
//
// The legacy algorithm is kept as the default so that hashes written by existing
// deployments keep verifying. Switching to Argon2id invalidates every stored hash and
// therefore requires a password reset campaign.
type HashAlgorithm string

const (
	// MD5 renders the digest as 32 uppercase hex characters, two per byte, most
	// significant nibble first. Deterministic and unsalted.
	MD5 HashAlgorithm = "md5"

	// Argon2id produces a salted PHC string (github.com/allisson/go-pwdhash).
	Argon2id HashAlgorithm = "argon2id"
)

const (
	// SymmetricKeySize is the session key length in bytes (AES-128).
	SymmetricKeySize = 16

	// RSAKeyBits is the modulus size of the generated key pair.
	RSAKeyBits = 2048

	// EnvelopeSize is the length in bytes of any RSA-2048 key exchange envelope.
	EnvelopeSize = RSAKeyBits / 8

	// PrivateKeyFileName holds the PKCS#8 DER encoded private key.
	PrivateKeyFileName = "privateKey.der"

	// PublicKeyFileName holds the X.509 SubjectPublicKeyInfo DER encoded public key.
	PublicKeyFileName = "publicKey.der"
)

// KeySource records where the process session key came from.
type KeySource string

const (
	// KeySourceFile means the key was read from a pre-provisioned file.
	KeySourceFile KeySource = "file"

	// KeySourceKMS means the key was unwrapped by a KMS keeper.
	KeySourceKMS KeySource = "kms"

	// KeySourceGenerated means the key was freshly drawn from crypto/rand.
	KeySourceGenerated KeySource = "generated"
)
