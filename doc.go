// Package vidstego hides a secret payload in the raw pixel samples of a video.
//
// The payload (a text message or a named file) is serialized, obfuscated
// with the password, base64-armored, prefixed with an 8-byte header and
// written one bit per sample into sample least-significant bits. Extraction
// reverses each step. Decoding and re-encoding the video container is left
// to an external pipeline that supplies frames through the carrier package.
//
// # Getting Started
//
//	codec, err := vidstego.New(vidstego.NewOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := codec.Embed(ctx, &vidstego.EmbedRequest{
//	    Carrier:  frames,             // carrier.Carrier from the decoder
//	    Sink:     encoder,            // carrier.Sink feeding the encoder
//	    Secret:   payload.NewText("meet at noon"),
//	    Password: "hunter2",
//	})
//	if err != nil {
//	    var capErr *capacity.CapacityError
//	    if errors.As(err, &capErr) {
//	        fmt.Printf("need %d bits, have %d\n", capErr.Needed, capErr.Available)
//	    }
//	    log.Fatal(err)
//	}
//
//	secret, err := codec.Extract(ctx, stegoFrames, "hunter2")
//
// # Core Types
//
//   - [Codec]: embed and extract entry points
//   - [Options]: admission cap, re-mux policy and prefetching
//   - [EmbedRequest] / [EmbedResult]: inputs and summary of one embed
//   - [Remuxer]: optional hook that restores the original audio track
//
// # Errors
//
// Every failure is returned before any result is produced. Classify with
// errors.Is:
//
//   - [ErrConfig]: missing password or secret, bad options
//   - [ErrCarrierTooLarge]: carrier exceeds Options.MaxCarrierBytes
//   - [ErrCapacity]: payload does not fit (errors.As a *capacity.CapacityError)
//   - [ErrNoPayload]: the carrier holds no payload
//   - [ErrInvalidLength]: the header declares an empty payload
//   - [ErrTruncatedCarrier]: the carrier ends inside the payload
//   - [ErrIncorrectPassword]: wrong password or corrupted payload; the
//     failing stage is not reported
//   - [ErrEmbedOverrun]: capacity planning and embedding disagree
//   - [ErrRemuxFailed]: audio re-mux failed under RemuxRequired
//
// # Security
//
// The password transform is a repeating-key XOR. It keeps casual observers
// from reading the payload but is not encryption: it is unauthenticated and
// falls to frequency analysis once the password length is guessed. The
// carrier must also survive bit-exact; any lossy re-encode destroys the
// payload.
//
// # Audio Carriers
//
// Package wavstego offers a separate codec for 16-bit PCM WAV files that
// encrypts with scrypt and AES-256-CTR and can add Hamming(7,4) error
// correction. Its format is unrelated to the video payload.
//
// # Thread Safety
//
// A Codec holds only its options and may be shared between goroutines. Each
// call owns its bit cursor and buffers.
package vidstego
