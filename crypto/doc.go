// Package crypto implements the password-derived transforms used by vidstego.
//
// Two unrelated schemes live here, one per carrier family:
//
// # Video payload obfuscation
//
// [Transform] XORs bytes with the repeating password, and [Armor] /
// [Unarmor] wrap the result in standard base64. The video pipeline is:
//
//	serialized record → Transform(·, password) → Armor → header length counts armored bytes
//	armored bytes → Unarmor → Transform(·, password) → serialized record
//
// Transform is its own inverse. It is a convenience obfuscation, not a
// cipher: there is no authentication, and an attacker who can guess the
// password length can recover it by frequency analysis or from a single
// known plaintext.
//
// # Audio payload encryption
//
// [DeriveKey] stretches the password with scrypt under a fixed salt, and
// [EncryptCTR] / [DecryptCTR] apply AES-256-CTR with a random IV prepended
// to the ciphertext. CTR is still unauthenticated; a wrong password decrypts
// to garbage that the caller must detect structurally.
//
// # Memory hygiene
//
// [SecureWipe] and [ZeroBytes] overwrite serialized secrets and derived keys
// once a call is finished with them.
//
// # Logging
//
// [LoggerHelper] attaches "function" and "package" fields to logrus entries.
// Nothing in this package logs a password, key or plaintext.
package crypto
