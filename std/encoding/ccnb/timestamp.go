package ccnb

import (
	"math"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
)

// Timestamps are fixed-point seconds with a 12-bit binary fraction,
// big-endian, at least 2 bytes long.
const (
	timestampFracBits = 12
	timestampFracMax  = 1 << timestampFracBits
	timestampMinLen   = 2
	timestampMaxLen   = 7
	timestampReadLen  = 8
)

var maxTimestampSecs = uint64(math.MaxInt64/int64(time.Second)) - 1

// EncodeTimestamp encodes a non-negative duration.
// The fraction is rounded to the nearest 1/4096 second.
func EncodeTimestamp(d time.Duration) ([]byte, error) {
	if d < 0 {
		return nil, ErrNegativeLength{Field: "Timestamp", Value: int64(d)}
	}

	secs := uint64(d / time.Second)
	nanos := d % time.Second
	frac := uint64(math.Round(float64(nanos) / float64(time.Second) * timestampFracMax))
	if frac >= timestampFracMax {
		secs++
		frac -= timestampFracMax
	}

	n := timestampMinLen
	for hi := secs >> lowBits; hi != 0 && n < timestampMaxLen; hi >>= 8 {
		n++
	}

	ret := make([]byte, n)
	low := (secs&lowMask)<<timestampFracBits | frac
	ret[n-2] = byte(low >> 8)
	ret[n-1] = byte(low)
	hi := secs >> lowBits
	for i := n - 3; i >= 0; i-- {
		ret[i] = byte(hi)
		hi >>= 8
	}
	return ret, nil
}

// DecodeTimestamp decodes a timestamp to microsecond precision.
func DecodeTimestamp(buf []byte) (time.Duration, error) {
	if len(buf) < timestampMinLen || len(buf) > timestampReadLen {
		return 0, enc.ErrFormat{Msg: "invalid timestamp length"}
	}

	n := len(buf)
	secs := uint64(0)
	for _, b := range buf[:n-2] {
		secs = secs<<8 | uint64(b)
	}
	secs = secs<<lowBits | uint64(buf[n-2]>>lowBits)
	if secs > maxTimestampSecs {
		return 0, enc.ErrFormat{Msg: "timestamp out of range"}
	}

	frac := uint64(buf[n-2]&lowMask)<<8 | uint64(buf[n-1])
	micros := frac * 1_000_000 / timestampFracMax
	return time.Duration(secs)*time.Second + time.Duration(micros)*time.Microsecond, nil
}

// EncodeTime encodes an absolute time as a timestamp since the Unix epoch.
// The zero time encodes as the epoch.
func EncodeTime(t time.Time) ([]byte, error) {
	if t.IsZero() {
		return EncodeTimestamp(0)
	}
	return EncodeTimestamp(t.Sub(time.Unix(0, 0)))
}

// DecodeTime decodes a timestamp since the Unix epoch.
func DecodeTime(buf []byte) (time.Time, error) {
	d, err := DecodeTimestamp(buf)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(d)), nil
}
