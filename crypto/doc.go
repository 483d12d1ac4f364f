// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the per-entry encryption protocol at the heart
// of go-secure-kv. It turns a plaintext logical key and value into a
// pseudonymized storage key and an authenticated, obfuscated ciphertext
// blob that can be persisted in any ordinary string-keyed key-value store.
//
// Every derived key mixes in an environment fingerprint and a per-store
// preference salt, so identical plaintexts stored under different
// installations or different stores never produce identical outputs, and a
// fresh random content salt per write keeps repeated writes of the same
// value distinct as well.
//
// The package is organised around one orchestrator and a set of pluggable
// capabilities:
//
//   - [EncryptionProtocol] — the orchestrator; built via
//     [NewEncryptionProtocol] from a [ProtocolConfig].
//   - [SymmetricEncryption] — AEAD cipher; AES-GCM and ChaCha20-Poly1305
//     implementations are provided.
//   - [KeyStretchingFunction] — password hardening; Argon2id and PBKDF2
//     implementations are provided, plus a fast HKDF variant for tests.
//   - [DataObfuscator] / [ObfuscatorFactory] — keyed ciphertext masking.
//   - [ContentKeyDigest] — storage-key pseudonymization.
//   - [EncryptionFingerprint] — environment binding material.
//
// All operations are synchronous and CPU-bound. Secret buffers (fingerprint
// copies, derived keys, stretched passwords) are wiped before each call
// returns, on success and failure paths alike.
package crypto
