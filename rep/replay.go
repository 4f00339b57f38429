// This file contains the Replay type and its components, which model a
// complete vehicle-soccer match replay.

package rep

// Replay models a complete replay: the metadata header, the body's asset
// and class-cache tables, and (optionally) the decoded network stream.
type Replay struct {
	// HeaderSize is the byte length of the header section, as read from
	// the outer container framing.
	HeaderSize int32

	// HeaderCRC is the header section's stored CRC.
	HeaderCRC uint32

	// MajorVersion and MinorVersion are the engine version the replay was
	// recorded with.
	MajorVersion, MinorVersion int32

	// NetVersion is present only when MajorVersion >= 868 && MinorVersion
	// >= 18; nil otherwise.
	NetVersion *int32

	// GameType names the game mode the replay's engine recorded (a
	// fully-qualified class name, e.g. "TAGame.GameInfo_Soccar_TA").
	GameType Text

	// Properties is the header's recursive property tree: match metadata,
	// player stats, goals, highlights, and everything else the game
	// chose to record as a key/value pair instead of wire-level state.
	Properties Properties

	// ContentSize is the byte length of the body+footer section.
	ContentSize int32

	// ContentCRC is the body section's stored CRC.
	ContentCRC uint32

	// Levels are the level (map) names the match was played on.
	Levels []Text

	// KeyFrames are seek points into the network stream.
	KeyFrames []KeyFrame

	// DebugInfo is the engine's internal debug log, when the replay
	// carries one.
	DebugInfo []DebugInfo

	// TickMarks annotate frames with named events (e.g. goals).
	TickMarks []TickMark

	// Packages are the asset package names the match referenced.
	Packages []Text

	// Objects is the global, 0-indexed object name table: class names,
	// replicated property names, and actor archetype names are all
	// referenced elsewhere in the replay as indices into this table.
	Objects []Text

	// Names is an auxiliary name table used by the network stream for
	// actor archetype names.
	Names []Text

	// ClassIndices maps class names to the integer id used to reference
	// them in the network stream.
	ClassIndices []ClassIndex

	// NetCache is the class→property dispatch forest: each class's
	// directly-declared properties, before inheriting its parent's.
	NetCache []ClassNetCache

	// NetworkData is the raw, still-undecoded network stream bytes, as
	// delimited by the body's length prefix. It is always populated
	// (zero-copy, a sub-slice of the input buffer) regardless of whether
	// NetworkFrames was also decoded.
	NetworkData []byte

	// NetworkFrames is the decoded network stream, present only when the
	// parser's NetworkParse policy attempted and succeeded at decoding it.
	NetworkFrames *NetworkFrames
}

// netVersionPresent reports whether the header carries a NetVersion field,
// per the wire format's version gate. Kept as a standalone predicate (Open
// Question (b) in the design notes); repparser/header.go carries an
// identical copy for its wire decode, so a future version range has to be
// patched in both places.
func netVersionPresent(major, minor int32) bool {
	return major >= 868 && minor >= 18
}

// TeamSize returns the header's "TeamSize" property, or 0 if absent.
func (r *Replay) TeamSize() int32 {
	v, _ := r.Properties.Int("TeamSize")
	return v
}

// MaxChannels returns the header's "MaxChannels" property, defaulting to
// 1023 per the wire format's default channel count when the property is
// absent.
func (r *Replay) MaxChannels() int32 {
	if v, ok := r.Properties.Int("MaxChannels"); ok {
		return v
	}
	return 1023
}

// NumFrames returns the header's "NumFrames" property, or 0 if absent.
func (r *Replay) NumFrames() int32 {
	v, _ := r.Properties.Int("NumFrames")
	return v
}

// MatchLength returns the header's "MatchLength" property in seconds, or 0
// if absent.
func (r *Replay) MatchLength() float32 {
	v, _ := r.Properties.Float("MatchLength")
	return v
}

// Team0Score returns the header's "Team0Score" property, or 0 if absent
// (e.g. for non-team game modes).
func (r *Replay) Team0Score() int32 {
	v, _ := r.Properties.Int("Team0Score")
	return v
}

// Team1Score returns the header's "Team1Score" property, or 0 if absent.
func (r *Replay) Team1Score() int32 {
	v, _ := r.Properties.Int("Team1Score")
	return v
}

// MapName returns the header's "MapName" property, or "" if absent.
func (r *Replay) MapName() string {
	v, _ := r.Properties.Str("MapName")
	return v
}

// Goal describes one scored goal, decoded from the header's "Goals" array
// property. This supplements the distilled spec.md data model (which only
// requires the raw property tree): every replay consumer built on the
// original boxcars re-extracts goals this way, so it is promoted here to a
// typed accessor, mirroring screp's Header methods that wrap raw fields.
type Goal struct {
	PlayerName string
	PlayerTeam int32
	Frame      int32
}

// Goals decodes the header's "Goals" array property into typed Goal
// values. Returns nil if the property is absent.
func (r *Replay) Goals() []Goal {
	arr, ok := r.Properties.Arr("Goals")
	if !ok {
		return nil
	}
	goals := make([]Goal, 0, len(arr))
	for _, entry := range arr {
		var g Goal
		g.PlayerName, _ = entry.Str("PlayerName")
		g.PlayerTeam, _ = entry.Int("PlayerTeam")
		g.Frame, _ = entry.Int("frame")
		goals = append(goals, g)
	}
	return goals
}

// PlayerStat describes one player's end-of-match stat line, decoded from
// the header's "PlayerStats" array property.
type PlayerStat struct {
	Name      string
	Platform  string
	Team      int32
	Score     int32
	Goals     int32
	Assists   int32
	Saves     int32
	Shots     int32
}

// Stats decodes the header's "PlayerStats" array property into typed
// PlayerStat values. Returns nil if the property is absent.
func (r *Replay) Stats() []PlayerStat {
	arr, ok := r.Properties.Arr("PlayerStats")
	if !ok {
		return nil
	}
	stats := make([]PlayerStat, 0, len(arr))
	for _, entry := range arr {
		var s PlayerStat
		s.Name, _ = entry.Str("Name")
		s.Platform, _ = entry.Str("Platform")
		s.Team, _ = entry.Int("Team")
		s.Score, _ = entry.Int("Score")
		s.Goals, _ = entry.Int("Goals")
		s.Assists, _ = entry.Int("Assists")
		s.Saves, _ = entry.Int("Saves")
		s.Shots, _ = entry.Int("Shots")
		stats = append(stats, s)
	}
	return stats
}

// HighLight describes one replay highlight entry, decoded from the
// header's "HighLights" array property.
type HighLight struct {
	Frame       int32
	BallActorID int32
	CarActorIDs []int32
}

// HighLights decodes the header's "HighLights" array property into typed
// HighLight values. Returns nil if the property is absent.
func (r *Replay) HighLights() []HighLight {
	arr, ok := r.Properties.Arr("HighLights")
	if !ok {
		return nil
	}
	hls := make([]HighLight, 0, len(arr))
	for _, entry := range arr {
		var h HighLight
		h.Frame, _ = entry.Int("frame")
		h.BallActorID, _ = entry.Int("BallName")
		if carArr, ok := entry.Arr("CarComponent_Dodge_Actors"); ok {
			for _, c := range carArr {
				if id, ok := c.Int("Id"); ok {
					h.CarActorIDs = append(h.CarActorIDs, id)
				}
			}
		}
		hls = append(hls, h)
	}
	return hls
}
