package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"mc-protocol-server/internal/config"
	"mc-protocol-server/internal/frame"
	"mc-protocol-server/internal/protocol"
	"mc-protocol-server/internal/registry"
)

// readScratch is the per-Read chunk size. Unlike the teacher's single fixed-size
// read-equals-one-packet assumption, a conn here keeps a rolling buffer and peels
// as many complete frames as are available before reading again (spec.md §5, §9).
const readScratch = 4096

// conn holds one accepted connection's state for the duration of handleConnection.
// No field here is shared with any other connection (spec.md §5 "no shared mutable
// state between connections").
type conn struct {
	nc      net.Conn
	cfg     frame.Config
	session *protocol.Session
	log     *slog.Logger
	buf     []byte
}

func handleConnection(nc net.Conn, cfg config.Config, log *slog.Logger) {
	defer nc.Close()

	c := &conn{
		nc:      nc,
		cfg:     frame.NewConfig(cfg.CompressionThreshold),
		session: protocol.NewSession(),
		log:     log.With("remote", nc.RemoteAddr().String()),
	}
	c.log.Debug("connection accepted")

	if err := c.run(); err != nil && !errors.Is(err, io.EOF) {
		c.log.Warn("connection closed", "error", err, "state", c.session.State.String())
		return
	}
	c.log.Debug("connection closed", "state", c.session.State.String())
}

// run reads frames until the socket closes or a fatal error occurs (spec.md §7).
func (c *conn) run() error {
	scratch := make([]byte, readScratch)
	for {
		for {
			f, n, err := frame.Decode(c.buf, c.cfg)
			if errors.Is(err, frame.ErrIncomplete) {
				break
			}
			if err != nil {
				return fmt.Errorf("server: decode frame: %w", err)
			}
			c.buf = c.buf[n:]
			if err := c.dispatch(f); err != nil {
				return err
			}
		}

		n, err := c.nc.Read(scratch)
		if n > 0 {
			c.buf = append(c.buf, scratch[:n]...)
		}
		if err != nil {
			return err
		}
	}
}

// dispatch decodes one frame's payload into a typed packet, applies its state
// effect, and sends whatever response packets the handshake requires (spec.md
// §4.4). An unregistered (state, id) pair is logged and discarded, per
// *protocol.ErrUnknownPacket's documented non-fatal policy.
func (c *conn) dispatch(f frame.Frame) error {
	state := c.session.LookupState()
	p, err := protocol.DecodeServerbound(state, f.PacketID, f.Payload)
	if err != nil {
		var unknown *protocol.ErrUnknownPacket
		if errors.As(err, &unknown) {
			c.log.Debug("unknown packet", "state", state.String(), "id", f.PacketID)
			return nil
		}
		return fmt.Errorf("server: %w", err)
	}

	c.session.Advance(p)

	switch pk := p.(type) {
	case *protocol.StatusRequestPacket:
		return c.send(&protocol.StatusResponsePacket{JSON: buildStatusJSON(20, 0)})

	case *protocol.PingRequestPacket:
		return c.send(&protocol.PingResponsePacket{Payload: pk.Payload})

	case *protocol.LoginStartPacket:
		if !protocol.ValidUsername(pk.Username) {
			if err := c.send(&protocol.LoginDisconnectPacket{Reason: `{"text":"Invalid username"}`}); err != nil {
				return err
			}
			return fmt.Errorf("server: rejected login: invalid username %q", pk.Username)
		}
		return c.send(&protocol.LoginSuccessPacket{
			UUID:                pk.UUID,
			Username:            pk.Username,
			Properties:          nil,
			StrictErrorHandling: false,
		})

	case *protocol.LoginAcknowledgedPacket:
		for _, reg := range registry.Burst() {
			if err := c.send(reg); err != nil {
				return err
			}
		}
		return c.send(&protocol.FinishConfigurationPacket{})

	case *protocol.AcknowledgeFinishConfigurationPacket:
		if err := c.send(loginPlay()); err != nil {
			return err
		}
		return c.send(&protocol.GameEventPacket{Event: 13, Value: 0.0})
	}

	return nil
}

// loginPlay builds the single LoginPlay response this core ever sends: one
// overworld dimension, no death location, matching original_source's
// AcknowledgeFinishConfigurationPacket handler (v1_21.rs).
func loginPlay() *protocol.LoginPlayPacket {
	return &protocol.LoginPlayPacket{
		EntityID:            1,
		IsHardcore:          false,
		DimensionNames:      []string{"minecraft:overworld"},
		MaxPlayers:          20,
		ViewDistance:        12,
		SimulationDistance:  12,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: false,
		DoLimitedCrafting:   false,
		DimensionType:       0,
		DimensionName:       "minecraft:overworld",
		HashedSeed:          0,
		GameMode:            0,
		PreviousGameMode:    -1,
		IsDebug:             false,
		IsFlat:              false,
		HasDeathLocation:    false,
		PortalCooldown:      0,
		EnforcesSecureChat:  false,
	}
}

func (c *conn) send(p protocol.ClientboundPacket) error {
	id, payload := protocol.EncodeClientbound(p)
	b := frame.Encode(frame.Frame{PacketID: id, Payload: payload}, c.cfg)
	_, err := c.nc.Write(b)
	return err
}
