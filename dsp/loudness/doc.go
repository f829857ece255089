// Package loudness brings shaped noise buffers to a consistent playback
// level and measures the result.
//
// [Normalizer] scales a buffer to a target RMS and then peak-limits it into
// [-1, 1]. [NormalizePeak] is the simpler peak-only variant. [Meter]
// measures ITU-R BS.1770 integrated loudness of a mono signal for reporting.
package loudness
