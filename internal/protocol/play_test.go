package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mc-protocol-server/internal/wire"
)

func TestLoginPlayEncodeWithoutDeathLocationOmitsOptionalTrailers(t *testing.T) {
	p := &LoginPlayPacket{
		EntityID:           1,
		IsHardcore:         false,
		DimensionNames:     []string{"minecraft:overworld"},
		MaxPlayers:         20,
		ViewDistance:       12,
		SimulationDistance: 12,
		DimensionType:      0,
		DimensionName:      "minecraft:overworld",
		HashedSeed:         0,
		GameMode:           0,
		PreviousGameMode:   -1,
		HasDeathLocation:   false,
		PortalCooldown:     0,
		EnforcesSecureChat: false,
	}

	e := wire.NewEncoder()
	p.Encode(e)

	d := wire.NewDecoder(e.Bytes())
	entityID, err := d.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(1), entityID)

	isHardcore, err := d.ReadBool()
	require.NoError(t, err)
	require.False(t, isHardcore)

	names, err := wire.ReadArray(d, (*wire.Decoder).ReadString)
	require.NoError(t, err)
	require.Equal(t, []string{"minecraft:overworld"}, names)

	maxPlayers, err := d.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, int32(20), maxPlayers)

	_, err = d.ReadVarInt() // view_distance
	require.NoError(t, err)
	_, err = d.ReadVarInt() // simulation_distance
	require.NoError(t, err)
	_, err = d.ReadBool() // reduced_debug_info
	require.NoError(t, err)
	_, err = d.ReadBool() // enable_respawn_screen
	require.NoError(t, err)
	_, err = d.ReadBool() // do_limited_crafting
	require.NoError(t, err)
	_, err = d.ReadVarInt() // dimension_type
	require.NoError(t, err)
	_, err = d.ReadString() // dimension_name
	require.NoError(t, err)
	_, err = d.ReadInt64() // hashed_seed
	require.NoError(t, err)
	_, err = d.ReadUint8() // game_mode
	require.NoError(t, err)
	_, err = d.ReadInt8() // previous_game_mode
	require.NoError(t, err)
	_, err = d.ReadBool() // is_debug
	require.NoError(t, err)
	_, err = d.ReadBool() // is_flat
	require.NoError(t, err)

	hasDeathLocation, err := d.ReadBool()
	require.NoError(t, err)
	require.False(t, hasDeathLocation)

	// With has_death_location=false, the very next field must be portal_cooldown,
	// not the death-location trailers (spec.md §8 scenario 6).
	portalCooldown, err := d.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, int32(0), portalCooldown)

	enforcesSecureChat, err := d.ReadBool()
	require.NoError(t, err)
	require.False(t, enforcesSecureChat)
	require.Zero(t, d.Remaining())
}

func TestLoginPlayEncodeWithDeathLocationIncludesTrailers(t *testing.T) {
	p := &LoginPlayPacket{
		DimensionNames:     []string{"minecraft:the_nether"},
		HasDeathLocation:   true,
		DeathDimensionName: "minecraft:overworld",
		DeathLocation:      wire.Position{X: 1, Y: 2, Z: 3},
	}

	e := wire.NewEncoder()
	p.Encode(e)
	require.NotZero(t, e.Len())

	without := *p
	without.HasDeathLocation = false
	plain := wire.NewEncoder()
	without.Encode(plain)
	// The trailers add death_dimension_name (1-byte length prefix + 19 bytes) and
	// an 8-byte packed death_location.
	require.Equal(t, plain.Len()+1+len(p.DeathDimensionName)+8, e.Len())
}

func TestGameEventEncode(t *testing.T) {
	p := &GameEventPacket{Event: 13, Value: 0.0}
	e := wire.NewEncoder()
	p.Encode(e)

	d := wire.NewDecoder(e.Bytes())
	event, err := d.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(13), event)

	value, err := d.ReadFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(0.0), value)
}
