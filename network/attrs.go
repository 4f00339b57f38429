// This file contains the attribute dispatch table: a static
// map[string]attrDecoderFunc keyed by replicated object name, in the shape
// of the teacher's rep/repcmd TypeID constant table plus its ByID
// lookup-table pattern (rep/repcore/enums.go), adapted from a byte-id key
// to a string key since this format dispatches by object name rather than
// a small integer opcode. The full table is format-defined data (spec.md
// §6); this implements one decoder per category spec.md §4.6 names, wired
// to real replicated property names so the table is extended by appending
// entries, never by touching the dispatch mechanism.

package network

import (
	"github.com/icza/rlrep/rep"
	"github.com/icza/rlrep/rep/attr"
)

func unknownAttributeErr(name string) error {
	return &rep.ParseError{Kind: rep.ErrKindUnknownAttribute, Name: name}
}

type attrDecoderFunc func(r *bitReader) (attr.Attribute, error)

var attrDecoders = map[string]attrDecoderFunc{
	"Engine.Actor:bBlockActors":                decodeBoolean,
	"Engine.Actor:bCollideActors":               decodeBoolean,
	"Engine.Actor:bHidden":                      decodeBoolean,
	"Engine.Pawn:PlayerReplicationInfo":         decodeActiveActor,
	"Engine.PlayerReplicationInfo:Team":         decodeActiveActor,
	"Engine.PlayerReplicationInfo:PlayerName":   decodeString,
	"Engine.PlayerReplicationInfo:UniqueId":     decodeUniqueID,
	"Engine.PlayerReplicationInfo:Ping":         decodeByte,
	"Engine.TeamInfo:Score":                     decodeInt,
	"TAGame.Ball_TA:HitTeamNum":                 decodeByte,
	"TAGame.Ball_TA:ReplicatedExplosionData":    decodeExplosion,
	"TAGame.Ball_TA:ReplicatedExplosionDataExtended": decodeExtendedExplosion,
	"TAGame.Ball_TA:ReplicatedAppliedDamage":    decodeAppliedDamage,
	"TAGame.RBActor_TA:ReplicatedRBState":       decodeRigidBodyState,
	"TAGame.VehiclePickup_TA:ReplicatedPickupData": decodePickup,
	"TAGame.Car_TA:ReplicatedDemolish":          decodeDemolish,
	"TAGame.Car_TA:TeamPaint":                   decodeTeamPaint,
	"TAGame.CarComponent_TA:ReplicatedActive":   decodeWeldedInfo,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoostAmount": decodeByte,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoost": decodeBoolean,
	"TAGame.PRI_TA:ClientLoadout":                decodeLoadout,
	"TAGame.PRI_TA:ClientLoadoutOnline":          decodeLoadoutOnline,
	"TAGame.PRI_TA:PartyLeader":                  decodePartyLeader,
	"TAGame.PRI_TA:CameraSettings":                decodeCamSettings,
	"TAGame.PRI_TA:MatchScore":                    decodeInt,
	"TAGame.PRI_TA:MatchGoals":                    decodeInt,
	"TAGame.PRI_TA:MatchAssists":                  decodeInt,
	"TAGame.PRI_TA:MatchSaves":                    decodeInt,
	"TAGame.PRI_TA:MatchShots":                    decodeInt,
	"TAGame.PRI_TA:MatchStatEvent":                 decodeStatEvent,
	"TAGame.GameEvent_TA:ReplicatedGameStateTimeRemaining": decodeInt,
	"TAGame.GameEvent_TA:ReplicatedGamePrivateSettings":    decodePrivateMatchSettings,
	"TAGame.GameEvent_TA:ReplicatedServerPerformanceState": decodeGameServerPing,
	"TAGame.GameEvent_Soccar_TA:ReplicatedGameMode":        decodeGameMode,
	"TAGame.GameEvent_Soccar_TA:RoundNum":                  decodeInt,
	"TAGame.CrowdActor_TA:ReplicatedMusicStinger":          decodeMusicStinger,
	"TAGame.GameEvent_Soccar_TA:ReservationList": decodeReservation,
}

// decodeAttribute dispatches on the replicated property name resolved from
// a class's net-cache entry. Unknown names raise UnknownAttribute unless
// the caller's NetworkParse policy tolerates it (handled by the façade,
// not here).
func decodeAttribute(name string, r *bitReader) (attr.Attribute, error) {
	fn, ok := attrDecoders[name]
	if !ok {
		return nil, unknownAttributeErr(name)
	}
	return fn(r)
}

func decodeBoolean(r *bitReader) (attr.Attribute, error) {
	v, err := r.readBit()
	return attr.BooleanAttribute{Value: v}, err
}

func decodeByte(r *bitReader) (attr.Attribute, error) {
	v, err := r.readAlignedByte()
	return attr.ByteAttribute{Value: v}, err
}

func decodeInt(r *bitReader) (attr.Attribute, error) {
	v, err := r.readU32(32)
	return attr.IntAttribute{Value: int32(v)}, err
}

func decodeFloat(r *bitReader) (attr.Attribute, error) {
	v, err := r.readF32()
	return attr.FloatAttribute{Value: v}, err
}

func decodeString(r *bitReader) (attr.Attribute, error) {
	s, err := r.readString()
	return attr.StringAttribute{Value: s.Value}, err
}

func decodeActiveActor(r *bitReader) (attr.Attribute, error) {
	a, err := readActiveActor(r)
	return a, err
}

func readActiveActor(r *bitReader) (attr.ActiveActorAttribute, error) {
	active, err := r.readBit()
	if err != nil || !active {
		return attr.ActiveActorAttribute{Active: active}, err
	}
	id, err := r.readU32(32)
	return attr.ActiveActorAttribute{Active: true, ActorID: int32(id)}, err
}

func decodeRigidBodyState(r *bitReader) (attr.Attribute, error) {
	sleeping, err := r.readBit()
	if err != nil {
		return nil, err
	}
	loc, err := r.readQuantizedVector()
	if err != nil {
		return nil, err
	}
	rot, err := r.readRotator()
	if err != nil {
		return nil, err
	}
	out := attr.RigidBodyStateAttribute{Sleeping: sleeping, Location: loc, Rotation: rot}
	if !sleeping {
		linvel, err := r.readQuantizedVector()
		if err != nil {
			return nil, err
		}
		angvel, err := r.readQuantizedVector()
		if err != nil {
			return nil, err
		}
		out.LinearVelocity = &linvel
		out.AngularVelocity = &angvel
	}
	return out, nil
}

func decodePickup(r *bitReader) (attr.Attribute, error) {
	instigator, err := readActiveActor(r)
	if err != nil {
		return nil, err
	}
	pickedUp, err := r.readBit()
	return attr.PickupAttribute{Instigator: instigator, PickedUp: pickedUp}, err
}

func decodeDemolish(r *bitReader) (attr.Attribute, error) {
	attacker, err := readActiveActor(r)
	if err != nil {
		return nil, err
	}
	victim, err := readActiveActor(r)
	if err != nil {
		return nil, err
	}
	attackerVel, err := r.readQuantizedVector()
	if err != nil {
		return nil, err
	}
	victimVel, err := r.readQuantizedVector()
	if err != nil {
		return nil, err
	}
	loc, err := r.readQuantizedVector()
	if err != nil {
		return nil, err
	}
	return attr.DemolishAttribute{
		AttackerActive: attacker.Active, AttackerID: attacker.ActorID,
		VictimActive: victim.Active, VictimID: victim.ActorID,
		AttackerVelocity: attackerVel, VictimVelocity: victimVel,
		DemolishedLocation: loc,
	}, nil
}

func decodeExplosion(r *bitReader) (attr.Attribute, error) {
	active, err := r.readBit()
	if err != nil {
		return nil, err
	}
	actorID := int32(-1)
	if active {
		id, err := r.readU32(32)
		if err != nil {
			return nil, err
		}
		actorID = int32(id)
	}
	loc, err := r.readQuantizedVector()
	return attr.ExplosionAttribute{ActorID: actorID, Location: loc}, err
}

func decodeExtendedExplosion(r *bitReader) (attr.Attribute, error) {
	base, err := decodeExplosion(r)
	if err != nil {
		return nil, err
	}
	unblockable, err := r.readBit()
	if err != nil {
		return nil, err
	}
	secondary, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	return attr.ExtendedExplosionAttribute{
		Explosion:        base.(attr.ExplosionAttribute),
		Unblockable:      unblockable,
		SecondaryActorID: int32(secondary),
	}, nil
}

func decodeUniqueID(r *bitReader) (attr.Attribute, error) {
	platformID, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	platform := attr.PlatformByID(platformID)
	remoteLen := remoteIDLength(platform)
	remote, err := r.readBytes(remoteLen)
	if err != nil {
		return nil, err
	}
	local, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	return attr.UniqueIDAttribute{
		Platform:      platform,
		RemoteID:      attr.Bytes(append([]byte(nil), remote...)),
		LocalPlayerID: local,
	}, nil
}

// remoteIDLength returns the opaque remote-id byte length for a platform,
// matching the per-platform id widths boxcars' UniqueId decoding uses
// (PlayStation and Nintendo Switch ids are 32 bytes, every other
// platform's, Xbox included, 8).
func remoteIDLength(p *attr.Platform) int {
	switch p.ID {
	case 2, 6: // PlayStation, NintendoSwitch
		return 32
	default: // Steam, Xbox, Epic, Unknown
		return 8
	}
}

func decodeLoadout(r *bitReader) (attr.Attribute, error) {
	version, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	readU32 := func() (uint32, error) { return r.readU32(32) }
	body, err := readU32()
	if err != nil {
		return nil, err
	}
	decal, err := readU32()
	if err != nil {
		return nil, err
	}
	wheels, err := readU32()
	if err != nil {
		return nil, err
	}
	rocketTrail, err := readU32()
	if err != nil {
		return nil, err
	}
	antenna, err := readU32()
	if err != nil {
		return nil, err
	}
	topper, err := readU32()
	if err != nil {
		return nil, err
	}
	unk1, err := readU32()
	if err != nil {
		return nil, err
	}
	unk2, err := readU32()
	if err != nil {
		return nil, err
	}
	out := attr.LoadoutAttribute{
		Version: version, Body: body, Decal: decal, Wheels: wheels,
		RocketTrail: rocketTrail, Antenna: antenna, Topper: topper,
		Unknown1: unk1, Unknown2: unk2,
	}
	if version >= 11 {
		engine, err := readU32()
		if err != nil {
			return nil, err
		}
		out.Engine = &engine
	}
	if version >= 16 {
		s1, err := readU32()
		if err != nil {
			return nil, err
		}
		s2, err := readU32()
		if err != nil {
			return nil, err
		}
		out.Special1, out.Special2 = &s1, &s2
	}
	return out, nil
}

func decodeLoadoutOnline(r *bitReader) (attr.Attribute, error) {
	slotCount, err := r.readU32Max(32)
	if err != nil {
		return nil, err
	}
	items := make([][]uint32, 0, slotCount)
	for i := uint32(0); i < slotCount; i++ {
		itemCount, err := r.readU32Max(8)
		if err != nil {
			return nil, err
		}
		item := make([]uint32, 0, itemCount)
		for j := uint32(0); j < itemCount; j++ {
			v, err := r.readU32(32)
			if err != nil {
				return nil, err
			}
			item = append(item, v)
		}
		items = append(items, item)
	}
	return attr.LoadoutOnlineAttribute{Items: items}, nil
}

func decodeTeamPaint(r *bitReader) (attr.Attribute, error) {
	team, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	primaryColor, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	accentColor, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	primaryFinish, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	accentFinish, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	return attr.TeamPaintAttribute{
		Team: team, PrimaryColor: primaryColor, AccentColor: accentColor,
		PrimaryFinish: primaryFinish, AccentFinish: accentFinish,
	}, nil
}

func decodeAppliedDamage(r *bitReader) (attr.Attribute, error) {
	id, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	pos, err := r.readQuantizedVector()
	if err != nil {
		return nil, err
	}
	idx, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	total, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	return attr.AppliedDamageAttribute{ID: id, Position: pos, DamageIndex: int32(idx), TotalDamage: int32(total)}, nil
}

func decodeGameMode(r *bitReader) (attr.Attribute, error) {
	v, err := r.readU32Max(12)
	return attr.GameModeAttribute{Value: uint8(v), NumBits: 4}, err
}

func decodePartyLeader(r *bitReader) (attr.Attribute, error) {
	flag, err := r.readBit()
	if err != nil || !flag {
		return attr.PartyLeaderAttribute{Flag: flag}, err
	}
	platformID, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	platform := attr.PlatformByID(platformID)
	sysID, err := r.readBytes(remoteIDLength(platform))
	if err != nil {
		return nil, err
	}
	return attr.PartyLeaderAttribute{Flag: true, Platform: platform, SystemID: attr.Bytes(append([]byte(nil), sysID...))}, nil
}

func decodePrivateMatchSettings(r *bitReader) (attr.Attribute, error) {
	mutator, err := r.readString()
	if err != nil {
		return nil, err
	}
	maxPlayers, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	gameName, err := r.readString()
	if err != nil {
		return nil, err
	}
	password, err := r.readString()
	if err != nil {
		return nil, err
	}
	flags, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	return attr.PrivateMatchSettingsAttribute{
		MutatorIndex: mutator.Value, MaxPlayers: maxPlayers,
		GameName: gameName.Value, Password: password.Value, Flags: flags,
	}, nil
}

func decodeCamSettings(r *bitReader) (attr.Attribute, error) {
	readF := func() (float32, error) { return r.readF32() }
	fov, err := readF()
	if err != nil {
		return nil, err
	}
	height, err := readF()
	if err != nil {
		return nil, err
	}
	angle, err := readF()
	if err != nil {
		return nil, err
	}
	distance, err := readF()
	if err != nil {
		return nil, err
	}
	stiffness, err := readF()
	if err != nil {
		return nil, err
	}
	swivel, err := readF()
	if err != nil {
		return nil, err
	}
	out := attr.CamSettingsAttribute{FOV: fov, Height: height, Angle: angle, Distance: distance, Stiffness: stiffness, SwivelSpeed: swivel}
	hasTransition, err := r.readBit()
	if err != nil {
		return nil, err
	}
	if hasTransition {
		t, err := readF()
		if err != nil {
			return nil, err
		}
		out.TransitionSpeed = &t
	}
	return out, nil
}

func decodeStatEvent(r *bitReader) (attr.Attribute, error) {
	unknown, err := r.readBit()
	if err != nil {
		return nil, err
	}
	id, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	return attr.StatEventAttribute{Unknown: unknown, Type: attr.StatEventTypeByID(int32(id))}, nil
}

func decodeMusicStinger(r *bitReader) (attr.Attribute, error) {
	flag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	cue, err := r.readU32(32)
	if err != nil {
		return nil, err
	}
	trigger, err := r.readAlignedByte()
	if err != nil {
		return nil, err
	}
	return attr.MusicStingerAttribute{Flag: flag, Cue: cue, Trigger: trigger}, nil
}

func decodeGameServerPing(r *bitReader) (attr.Attribute, error) {
	v, err := r.readU32(32)
	return attr.GameServerPingAttribute{Ping: int32(v)}, err
}

func decodeWeldedInfo(r *bitReader) (attr.Attribute, error) {
	a, err := readActiveActor(r)
	return attr.WeldedInfoAttribute{Active: a.Active, ActorID: a.ActorID}, err
}

func decodeReservation(r *bitReader) (attr.Attribute, error) {
	number, err := r.readU32Max(7)
	if err != nil {
		return nil, err
	}
	unique, err := decodeUniqueID(r)
	if err != nil {
		return nil, err
	}
	name, err := r.readString()
	if err != nil {
		return nil, err
	}
	bot, err := r.readBit()
	if err != nil {
		return nil, err
	}
	return attr.ReservationAttribute{
		Number: int32(number), UniqueID: unique.(attr.UniqueIDAttribute),
		Name: name.Value, Bot: bot,
	}, nil
}
