// Package carrier abstracts the raw frame sequence a payload is hidden in.
//
// Decoding and encoding real video containers belongs to an external
// pipeline (ffmpeg, GStreamer, OpenCV). This package defines the boundary
// the codec consumes: a [Carrier] that can be opened (and re-opened) into a
// [Source] of frames, and a [Sink] that accepts frames after bit-packing.
//
// # Frames
//
// Every [Frame] holds a flat buffer of width*height*channels unsigned 8-bit
// samples. All frames of one carrier share the same [Geometry], so capacity
// is frames*width*height*channels bits at one bit per sample.
//
// # Ownership
//
// A Source hands out one frame at a time. The consumer may mutate
// Frame.Data in place and then passes the frame to a Sink; nothing keeps a
// reference after that, so memory stays bounded by a few frames no matter
// how long the video is.
//
// # Implementations
//
//   - [Memory]: frames held in memory, used by tests and small carriers.
//     Opening it yields copies, so the original frames are never touched.
//   - [MemorySink]: collects written frames and turns them back into a
//     Memory carrier for extraction.
//   - [RawCarrier] / [RawSink]: packed rawvideo byte streams, the format
//     produced by "ffmpeg -f rawvideo -pix_fmt bgr24 -".
//
// # Pipelining
//
// [Prefetch] decodes the next frame on a separate goroutine while the
// current one is being processed, with a single-slot hand-off so at most one
// extra frame is buffered.
package carrier
