// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package snapshot stores clock snapshots on disk.
//
// A snapshot file holds one CBOR-encoded value (see lib/codec). Files
// are written atomically: the encoded value goes to a temporary file
// in the same directory, which is fsynced and renamed into place, so a
// reader never sees a partial snapshot even if the writer is killed
// mid-write.
//
// This package has no dependencies on the clock packages; callers pass
// whatever value they want stored.
package snapshot
