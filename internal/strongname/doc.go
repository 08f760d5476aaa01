// Package strongname derives public-key tokens from strong-name public keys.
//
// A public-key token is the compressed form of a public key used in assembly
// identities: the low 8 bytes of the SHA-1 digest of the public-key blob, in
// reverse byte order, rendered as lower-case hex. The algorithm is fixed by
// the metadata format; every producer must derive identical tokens from
// identical blobs, so there is no configurable hashing strategy here.
//
// # Known Values
//
// The 16-byte standard public key (hex 00000000000000000400000000000000)
// derives the token b77a5c561934e089, which is the token carried by the
// base runtime library and the core framework assemblies.
package strongname
