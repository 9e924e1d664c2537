// Package radiance decodes Radiance RGBE (.hdr, .pic) images into linear
// float32 radiance and converts them to 8-bit display pixels with an
// approximate filmic curve.
//
// Decoding works on the complete file contents; there is no streaming reader
// and no encoder.
package radiance
