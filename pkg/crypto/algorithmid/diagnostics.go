// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

import "github.com/pion/logging"

// Recorder receives a report for each AlgorithmIdentifier whose OID is not in
// the registry. Recognized-but-rejected encodings are never reported.
//
// Implementations are called with owned copies of the bytes, so they may
// retain them. A Recorder shared across goroutines must be safe for
// concurrent use; classification itself imposes no sharing.
type Recorder interface {
	RecordUnknownAlgorithm(oid, params []byte)
}

// UnknownAlgorithm is one collected report. OID and Parameters are the DER
// content octets of the algorithm OID and the raw parameters TLV (nil when
// the parameters were absent).
type UnknownAlgorithm struct {
	OID        []byte
	Parameters []byte
}

// Diagnostics is a Recorder collecting reports in memory, for callers that
// feed telemetry from unknown algorithms. Not safe for concurrent use; share
// one per classification context or wrap it in a lock.
type Diagnostics struct {
	Records []UnknownAlgorithm
}

// RecordUnknownAlgorithm implements Recorder.
func (d *Diagnostics) RecordUnknownAlgorithm(oid, params []byte) {
	d.Records = append(d.Records, UnknownAlgorithm{OID: oid, Parameters: params})
}

// LogRecorder is a Recorder that forwards reports to a LeveledLogger, for
// pipelines that only want unknown algorithms in their logs.
type LogRecorder struct {
	log logging.LeveledLogger
}

// NewLogRecorder creates a LogRecorder writing to log.
func NewLogRecorder(log logging.LeveledLogger) *LogRecorder {
	return &LogRecorder{log: log}
}

// RecordUnknownAlgorithm implements Recorder.
func (r *LogRecorder) RecordUnknownAlgorithm(oid, params []byte) {
	r.log.Warnf("unknown signature algorithm: oid=%x params=%x", oid, params)
}
