// Package wav writes and reads mono 16-bit PCM WAV files.
//
// It is a thin layer over github.com/go-audio/wav that takes the int16
// samples produced by package pcm and streams them to the encoder in
// fixed-size chunks, so the int-widened copy go-audio expects never has to
// exist for the whole signal at once.
package wav
