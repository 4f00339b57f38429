// This file contains the attribute value variant types. Each type
// implements Attribute. Constructors are intentionally absent: the network
// package's decoder functions build these directly from decoded wire
// fields, the way the teacher builds a *repcmd.BuildCmd directly from
// sliceReader reads instead of going through a constructor.

package attr

import (
	"fmt"
	"strings"
)

// BooleanAttribute is a single replicated bit, e.g. Engine.Actor:bBlockActors.
type BooleanAttribute struct {
	Value bool
}

func (a BooleanAttribute) String() string { return fmt.Sprint(a.Value) }

// ByteAttribute is a single replicated byte, e.g. TAGame.Ball_TA:HitTeamNum.
type ByteAttribute struct {
	Value byte
}

func (a ByteAttribute) String() string { return fmt.Sprint(a.Value) }

// IntAttribute is a replicated 32-bit integer.
type IntAttribute struct {
	Value int32
}

func (a IntAttribute) String() string { return fmt.Sprint(a.Value) }

// Int64Attribute is a replicated 64-bit integer (e.g. platform-specific
// online ids wider than 32 bits).
type Int64Attribute struct {
	Value int64
}

func (a Int64Attribute) String() string { return fmt.Sprint(a.Value) }

// FloatAttribute is a replicated 32-bit float.
type FloatAttribute struct {
	Value float32
}

func (a FloatAttribute) String() string { return fmt.Sprint(a.Value) }

// StringAttribute is a replicated length-prefixed string.
type StringAttribute struct {
	Value string
}

func (a StringAttribute) String() string { return a.Value }

// NameAttribute is a replicated name-table reference.
type NameAttribute struct {
	Value string
}

func (a NameAttribute) String() string { return a.Value }

// EnumAttribute is a small replicated integer with a type name describing
// the vocabulary it indexes into (e.g. GameEvent stage enums); the type
// name is wire-defined data, not looked up here.
type EnumAttribute struct {
	Value uint16
}

func (a EnumAttribute) String() string { return fmt.Sprint(a.Value) }

// FlaggedByteAttribute pairs a presence flag with a byte value, for
// properties that only replicate a value when a preceding bit is set.
// TAGame.PRI_TA:PartyLeader, which has a flag-then-payload shape, decodes
// to PartyLeaderAttribute instead.
type FlaggedByteAttribute struct {
	Flag  bool
	Value byte
}

func (a FlaggedByteAttribute) String() string {
	return fmt.Sprintf("flag=%t, value=%d", a.Flag, a.Value)
}

// ActiveActorAttribute references another actor, e.g.
// Engine.Pawn:PlayerReplicationInfo.
type ActiveActorAttribute struct {
	// Active tells if the reference is currently valid.
	Active bool
	// ActorID is the referenced actor's channel id.
	ActorID int32
}

func (a ActiveActorAttribute) String() string {
	if !a.Active {
		return "none"
	}
	return fmt.Sprint("actor#", a.ActorID)
}

// QuantizedVectorAttribute is a replicated position/velocity, e.g.
// TAGame.RBActor_TA:ReplicatedRBState's location component.
type QuantizedVectorAttribute struct {
	Value Vector3f
}

func (a QuantizedVectorAttribute) String() string { return a.Value.String() }

// RotationAttribute is a replicated orientation.
type RotationAttribute struct {
	Value Rotator
}

func (a RotationAttribute) String() string { return a.Value.String() }

// RigidBodyStateAttribute is the core per-tick physics replication for
// cars and the ball: TAGame.RBActor_TA:ReplicatedRBState.
type RigidBodyStateAttribute struct {
	Sleeping       bool
	Location       Vector3f
	Rotation       Rotator
	LinearVelocity *Vector3f
	AngularVelocity *Vector3f
}

func (a RigidBodyStateAttribute) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "sleeping=%t, loc=(%v), rot=(%v)", a.Sleeping, a.Location, a.Rotation)
	if a.LinearVelocity != nil {
		fmt.Fprintf(b, ", linvel=(%v)", *a.LinearVelocity)
	}
	if a.AngularVelocity != nil {
		fmt.Fprintf(b, ", angvel=(%v)", *a.AngularVelocity)
	}
	return b.String()
}

// PickupAttribute describes a boost/item pickup event, e.g.
// TAGame.VehiclePickup_TA:ReplicatedPickupData.
type PickupAttribute struct {
	// Instigator references the car that picked up the item; its Active is
	// false if nothing has picked it up (yet / anymore).
	Instigator ActiveActorAttribute
	// PickedUp tells whether the item has been consumed.
	PickedUp bool
}

func (a PickupAttribute) String() string {
	return fmt.Sprintf("instigator=%v, pickedUp=%t", a.Instigator, a.PickedUp)
}

// DemolishAttribute describes a car demolition event:
// TAGame.Car_TA:ReplicatedDemolish.
type DemolishAttribute struct {
	AttackerActive bool
	AttackerID     int32
	VictimActive   bool
	VictimID       int32
	AttackerVelocity Vector3f
	VictimVelocity   Vector3f
	DemolishedLocation Vector3f
}

func (a DemolishAttribute) String() string {
	return fmt.Sprintf("attacker=#%d, victim=#%d, at=(%v)", a.AttackerID, a.VictimID, a.DemolishedLocation)
}

// ExplosionAttribute describes a non-extended explosion (e.g. boost pad
// depletion visual), TAGame.Ball_TA:ReplicatedExplosionData.
type ExplosionAttribute struct {
	// ActorID is the instigating actor, or -1 if none.
	ActorID  int32
	Location Vector3f
}

func (a ExplosionAttribute) String() string {
	return fmt.Sprintf("actor=#%d, at=(%v)", a.ActorID, a.Location)
}

// ExtendedExplosionAttribute additionally carries whether the explosion was
// caused by a secondary ("unblockable"/goal-explosion) effect.
type ExtendedExplosionAttribute struct {
	Explosion  ExplosionAttribute
	Unblockable bool
	SecondaryActorID int32
}

func (a ExtendedExplosionAttribute) String() string {
	return fmt.Sprintf("%v, unblockable=%t", a.Explosion, a.Unblockable)
}

// ReservationAttribute is a lobby-slot reservation record,
// TAGame.GameEvent_Soccar_TA:ReservationList, carrying the same unique-id
// payload as Engine.PlayerReplicationInfo:UniqueId.
type ReservationAttribute struct {
	Number     int32
	UniqueID   UniqueIDAttribute
	Name       string
	Bot        bool
}

func (a ReservationAttribute) String() string {
	return fmt.Sprintf("#%d %s (bot=%t)", a.Number, a.Name, a.Bot)
}

// UniqueIDAttribute is a player's platform-qualified online id,
// Engine.PlayerReplicationInfo:UniqueId.
type UniqueIDAttribute struct {
	// Platform the id belongs to.
	Platform *Platform
	// RemoteID is the opaque, platform-specific id bytes.
	RemoteID Bytes
	// LocalPlayerID distinguishes split-screen players on the same machine.
	LocalPlayerID byte
}

func (a UniqueIDAttribute) String() string {
	return fmt.Sprintf("%v:% x (local#%d)", a.Platform, []byte(a.RemoteID), a.LocalPlayerID)
}

// LoadoutAttribute is a player's cosmetic item loadout for one car body,
// TAGame.PRI_TA:ClientLoadout.
type LoadoutAttribute struct {
	Version uint8
	Body    uint32
	Decal   uint32
	Wheels  uint32
	RocketTrail uint32
	Antenna uint32
	Topper  uint32
	Unknown1 uint32
	Unknown2 uint32
	Engine    *uint32
	Special1  *uint32
	Special2  *uint32
}

func (a LoadoutAttribute) String() string {
	return fmt.Sprintf("body=%d decal=%d wheels=%d", a.Body, a.Decal, a.Wheels)
}

// LoadoutOnlineAttribute carries the online-only paint/certified-item
// extension of LoadoutAttribute, TAGame.PRI_TA:ClientLoadoutOnline.
type LoadoutOnlineAttribute struct {
	// Items holds one list of raw 32-bit values (at most 8) per loadout
	// slot, in slot order; a slot without an online attachment has an
	// empty list.
	Items [][]uint32
}

func (a LoadoutOnlineAttribute) String() string {
	return fmt.Sprintf("%d online item slots", len(a.Items))
}

// TeamPaintAttribute is TAGame.Car_TA:TeamPaint: the club-color override
// applied to a car.
type TeamPaintAttribute struct {
	Team            byte
	PrimaryColor    byte
	AccentColor     byte
	PrimaryFinish   uint32
	AccentFinish    uint32
}

func (a TeamPaintAttribute) String() string {
	return fmt.Sprintf("team=%d primary=%d accent=%d", a.Team, a.PrimaryColor, a.AccentColor)
}

// AppliedDamageAttribute describes a demolition-ball ability's impact,
// TAGame.Ball_TA:ReplicatedAppliedDamage.
type AppliedDamageAttribute struct {
	ID       byte
	Position Vector3f
	DamageIndex int32
	TotalDamage int32
}

func (a AppliedDamageAttribute) String() string {
	return fmt.Sprintf("id=%d damage=%d/%d", a.ID, a.DamageIndex, a.TotalDamage)
}

// GameModeAttribute is TAGame.GameEvent_Soccar_TA:ReplicatedGameMode-style
// small enumerated game mode id, kept separate from EnumAttribute because
// it additionally records the bit width the mode was encoded with (widened
// in later network versions to support more playlists).
type GameModeAttribute struct {
	Value uint8
	NumBits byte
}

func (a GameModeAttribute) String() string { return fmt.Sprint(a.Value) }

// PartyLeaderAttribute is TAGame.PRI_TA:PartyLeader: an optional reference
// to the local system id of the party leader.
type PartyLeaderAttribute struct {
	Flag     bool
	Platform *Platform
	SystemID Bytes
}

func (a PartyLeaderAttribute) String() string {
	if !a.Flag {
		return "none"
	}
	return fmt.Sprintf("%v:% x", a.Platform, []byte(a.SystemID))
}

// PrivateMatchSettingsAttribute is
// TAGame.GameEvent_TA:ReplicatedGamePrivateSettings.
type PrivateMatchSettingsAttribute struct {
	MutatorIndex string
	MaxPlayers   uint32
	GameName     string
	Password     string
	Flags        uint32
}

func (a PrivateMatchSettingsAttribute) String() string {
	return fmt.Sprintf("%q (max=%d)", a.GameName, a.MaxPlayers)
}

// CamSettingsAttribute is TAGame.PRI_TA:CameraSettings.
type CamSettingsAttribute struct {
	FOV             float32
	Height          float32
	Angle           float32
	Distance        float32
	Stiffness       float32
	SwivelSpeed     float32
	TransitionSpeed *float32
}

func (a CamSettingsAttribute) String() string {
	return fmt.Sprintf("fov=%v dist=%v", a.FOV, a.Distance)
}

// StatEventAttribute is TAGame.PRI_TA:MatchStatEvent-style gameplay stat
// event (saves, assists, epic saves).
type StatEventAttribute struct {
	Unknown bool
	Type    *StatEventType
}

func (a StatEventAttribute) String() string { return a.Type.String() }

// MusicStingerAttribute is TAGame.CrowdActor_TA:ReplicatedMusicStinger.
type MusicStingerAttribute struct {
	Flag   bool
	Cue    uint32
	Trigger byte
}

func (a MusicStingerAttribute) String() string {
	return fmt.Sprintf("cue=%d trigger=%d", a.Cue, a.Trigger)
}

// GameServerPingAttribute is TAGame.GameEvent_TA:ReplicatedServerPerformanceState.
type GameServerPingAttribute struct {
	Ping  int32
}

func (a GameServerPingAttribute) String() string { return fmt.Sprint(a.Ping) }

// WeldedInfoAttribute is TAGame.CarComponent_TA:ReplicatedActive-style
// "attached to" reference used by boost/dodge/jump components.
type WeldedInfoAttribute struct {
	Active bool
	ActorID int32
}

func (a WeldedInfoAttribute) String() string {
	if !a.Active {
		return "none"
	}
	return fmt.Sprint("actor#", a.ActorID)
}
