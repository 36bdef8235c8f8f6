// Package masterkey holds the master secret every derivation starts from.
//
// A Master wraps the raw master-password bytes together with a default digest
// algorithm. Construction rejects SHA-1; everything else about the master is
// plain data handed to the password, seed-cipher and fingerprint packages.
//
// The master password necessarily exists in memory in clear form while
// derivations run. Zero gives callers a best-effort scrub once a session
// ends, but the engine makes no wipe-on-drop guarantee of its own.
package masterkey
