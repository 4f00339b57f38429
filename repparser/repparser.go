// This file contains the parser façade: container framing, the CrcCheck /
// NetworkParse policy matrix, and the panic-recovery wrapper around the
// whole parse, grounded in the teacher's repparser.go (ParseFile/Parse,
// Config, parseProtected) and in original_source/parser.rs's
// ParserBuilder/Parser/crc_section.

package repparser

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/icza/rlrep/network"
	"github.com/icza/rlrep/rep"
)

// CrcCheck controls when the parser validates a framed section's CRC.
type CrcCheck byte

// Possible values of CrcCheck.
const (
	// CrcCheckOnError computes the CRC only if the decoder already
	// returned an error, annotating it with a "corrupt" note if the CRC
	// also disagrees. This is the default: fast on well-formed input,
	// still diagnostic on malformed input.
	CrcCheckOnError CrcCheck = iota
	// CrcCheckAlways always computes and validates the CRC before
	// returning, even when the decoder succeeded.
	CrcCheckAlways
	// CrcCheckNever never computes the CRC.
	CrcCheckNever
)

// NetworkParse controls whether and how the network stream is decoded.
type NetworkParse byte

// Possible values of NetworkParse.
const (
	// NetworkParseIgnoreOnError attempts network decoding but discards the
	// result (leaving NetworkFrames nil) on error instead of failing the
	// whole parse. This is the default.
	NetworkParseIgnoreOnError NetworkParse = iota
	// NetworkParseAlways propagates network decoding errors as parse
	// errors.
	NetworkParseAlways
	// NetworkParseNever skips network decoding entirely; the network-data
	// window is never read.
	NetworkParseNever
)

// Config controls parser policy, mirroring the teacher's
// Config{Commands, MapData, Debug} shape: a plain struct of booleans/enums,
// no env vars or files, since this format has no CLI/env/fs surface at the
// core boundary.
type Config struct {
	CrcCheck     CrcCheck
	NetworkParse NetworkParse
}

// DefaultConfig returns the default policy: CrcCheckOnError and
// NetworkParseIgnoreOnError, matching spec.md §6's stated defaults.
func DefaultConfig() Config {
	return Config{CrcCheck: CrcCheckOnError, NetworkParse: NetworkParseIgnoreOnError}
}

// ParserBuilder builds a Config fluently. The method names are adapted from
// original_source/parser.rs's ParserBuilder (e.g. always_check_crc becomes
// AlwaysCheckCrc, on_error_check_crc becomes CheckCrcOnError).
type ParserBuilder struct {
	cfg Config
}

// NewParserBuilder returns a builder seeded with DefaultConfig.
func NewParserBuilder() *ParserBuilder {
	return &ParserBuilder{cfg: DefaultConfig()}
}

func (b *ParserBuilder) AlwaysCheckCrc() *ParserBuilder   { b.cfg.CrcCheck = CrcCheckAlways; return b }
func (b *ParserBuilder) NeverCheckCrc() *ParserBuilder    { b.cfg.CrcCheck = CrcCheckNever; return b }
func (b *ParserBuilder) CheckCrcOnError() *ParserBuilder  { b.cfg.CrcCheck = CrcCheckOnError; return b }
func (b *ParserBuilder) AlwaysParseNetworkData() *ParserBuilder {
	b.cfg.NetworkParse = NetworkParseAlways
	return b
}
func (b *ParserBuilder) NeverParseNetworkData() *ParserBuilder {
	b.cfg.NetworkParse = NetworkParseNever
	return b
}
func (b *ParserBuilder) IgnoreNetworkDataOnError() *ParserBuilder {
	b.cfg.NetworkParse = NetworkParseIgnoreOnError
	return b
}

// Build returns the built Config.
func (b *ParserBuilder) Build() Config {
	return b.cfg
}

// Parse parses data using DefaultConfig.
func Parse(data []byte) (*rep.Replay, error) {
	return ParseConfig(data, DefaultConfig())
}

// ParseConfig parses data using the given Config, recovering from any
// panic raised during decoding the way the teacher's parseProtected does:
// log a diagnostic and a truncated stack, and return a plain error instead
// of letting a malformed replay crash the caller's process.
func ParseConfig(data []byte, cfg Config) (replay *rep.Replay, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			if len(stack) > 4096 {
				stack = stack[:4096]
			}
			log.Printf("repparser: recovered from panic: %v\n%s", rec, stack)
			replay = nil
			err = fmt.Errorf("repparser: internal error while parsing replay: %v", rec)
		}
	}()
	return parse(data, cfg)
}

// decodeNetworkProtected calls network.Decode under its own recover, scoped
// narrowly so a defect in network-stream decoding degrades only the network
// parse outcome: the header and body this call already decoded successfully
// are still returned by the caller, matching NetworkParseIgnoreOnError's
// contract of leaving NetworkFrames absent rather than discarding everything.
func decodeNetworkProtected(replay *rep.Replay) (frames *rep.NetworkFrames, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			if len(stack) > 4096 {
				stack = stack[:4096]
			}
			log.Printf("repparser: recovered from panic decoding network stream: %v\n%s", rec, stack)
			frames = nil
			err = fmt.Errorf("repparser: internal error while decoding network stream: %v", rec)
		}
	}()
	return network.Decode(replay)
}

func parse(data []byte, cfg Config) (*rep.Replay, error) {
	r := newByteReader(data)

	headerSize, err := r.takeU32LE()
	if err != nil {
		return nil, err
	}
	headerCRC, err := r.takeU32LE()
	if err != nil {
		return nil, err
	}
	headerBytes, err := r.viewBytes(int(headerSize))
	if err != nil {
		return nil, err
	}
	headerStart := r.bytesRead()

	header, headerErr := decodeHeader(r)
	headerErr = rep.WithContext(headerErr, "header", r.bytesRead())
	if err := crcSection(cfg.CrcCheck, "header", headerBytes, headerCRC, headerErr); err != nil {
		return nil, err
	}
	// Advance past any bytes the header decoder didn't consume (the header
	// window's length is authoritative, not the decoder's read count).
	if consumed := r.bytesRead() - headerStart; consumed < int(headerSize) {
		if _, err := r.takeBytes(int(headerSize) - consumed); err != nil {
			return nil, err
		}
	}

	contentSize, err := r.takeU32LE()
	if err != nil {
		return nil, err
	}
	contentCRC, err := r.takeU32LE()
	if err != nil {
		return nil, err
	}
	contentBytes, err := r.viewBytes(int(contentSize))
	if err != nil {
		return nil, err
	}
	contentStart := r.bytesRead()

	body, bodyErr := decodeBody(r)
	bodyErr = rep.WithContext(bodyErr, "body", r.bytesRead())
	if err := crcSection(cfg.CrcCheck, "body", contentBytes, contentCRC, bodyErr); err != nil {
		return nil, err
	}
	if consumed := r.bytesRead() - contentStart; consumed < int(contentSize) {
		if _, err := r.takeBytes(int(contentSize) - consumed); err != nil {
			return nil, err
		}
	}

	replay := &rep.Replay{
		HeaderSize:   int32(headerSize),
		HeaderCRC:    headerCRC,
		MajorVersion: header.majorVersion,
		MinorVersion: header.minorVersion,
		NetVersion:   header.netVersion,
		GameType:     header.gameType,
		Properties:   header.properties,
		ContentSize:  int32(contentSize),
		ContentCRC:   contentCRC,
		Levels:       body.levels,
		KeyFrames:    body.keyFrames,
		DebugInfo:    body.debugInfo,
		TickMarks:    body.tickMarks,
		Packages:     body.packages,
		Objects:      body.objects,
		Names:        body.names,
		ClassIndices: body.classIndices,
		NetCache:     body.netCache,
		NetworkData:  body.networkData,
	}

	if cfg.NetworkParse == NetworkParseNever {
		return replay, nil
	}

	frames, netErr := decodeNetworkProtected(replay)
	netErr = rep.WithContext(netErr, "network stream", 0)
	switch cfg.NetworkParse {
	case NetworkParseAlways:
		if netErr != nil {
			return nil, netErr
		}
		replay.NetworkFrames = frames
	case NetworkParseIgnoreOnError:
		if netErr == nil {
			replay.NetworkFrames = frames
		}
	}

	return replay, nil
}

// crcSection implements the 3x3 CrcCheck policy matrix at the two
// decision points (header, body): compute the CRC only when the policy
// demands it, and fold the comparison result together with the decoder's
// own error per spec.md §4.5.
func crcSection(policy CrcCheck, section string, window []byte, expectedCRC uint32, decodeErr error) error {
	switch policy {
	case CrcCheckNever:
		return decodeErr

	case CrcCheckAlways:
		actual := crc32Section(window)
		if actual != expectedCRC {
			return &rep.ParseError{Kind: rep.ErrKindCrcMismatch, Section: section, Expected: expectedCRC, Actual: actual}
		}
		return decodeErr

	case CrcCheckOnError:
		if decodeErr == nil {
			return nil
		}
		actual := crc32Section(window)
		if actual != expectedCRC {
			return fmt.Errorf("Failed to parse %s and crc check failed. Replay is corrupt: %w", section, decodeErr)
		}
		return decodeErr

	default:
		return decodeErr
	}
}
