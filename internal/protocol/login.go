package protocol

import (
	"github.com/google/uuid"

	"mc-protocol-server/internal/wire"
)

// usernameMaxLen and usernameMinLen bound LoginStart.username, the same
// restricted-charset discipline spec.md §3 applies to Identifier components.
const (
	usernameMinLen = 3
	usernameMaxLen = 16
)

// ValidUsername reports whether a LoginStart username passes the Identifier-style
// wire-string check spec.md §3 describes: a bounded length and a restricted charset,
// here `[A-Za-z0-9_]`. A username failing this is rejected with LoginDisconnectPacket
// rather than allowed to reach Configuration (SPEC_FULL.md §4.3.1).
func ValidUsername(name string) bool {
	if len(name) < usernameMinLen || len(name) > usernameMaxLen {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

const (
	idLoginStart        int32 = 0x00
	idLoginDisconnect   int32 = 0x00
	idLoginSuccess      int32 = 0x02
	idLoginAcknowledged int32 = 0x03
)

// Property is a signed or unsigned account property attached to LoginSuccess
// (spec.md §4.3): signature is present iff Signed is true.
type Property struct {
	Name      string
	Value     string
	Signed    bool
	Signature string
}

func encodeProperty(e *wire.Encoder, p Property) {
	e.WriteString(p.Name)
	e.WriteString(p.Value)
	e.WriteBool(p.Signed)
	wire.WriteOptional(e, p.Signed, p.Signature, (*wire.Encoder).WriteString)
}

func decodeProperty(d *wire.Decoder) (Property, error) {
	var p Property
	var err error
	if p.Name, err = d.ReadString(); err != nil {
		return p, err
	}
	if p.Value, err = d.ReadString(); err != nil {
		return p, err
	}
	if p.Signed, err = d.ReadBool(); err != nil {
		return p, err
	}
	if p.Signature, err = wire.ReadOptional(d, p.Signed, (*wire.Decoder).ReadString); err != nil {
		return p, err
	}
	return p, nil
}

// LoginStartPacket begins the Login phase (spec.md §4.3).
type LoginStartPacket struct {
	Username string
	UUID     uuid.UUID
}

func (p *LoginStartPacket) ID() int32 { return idLoginStart }

func (p *LoginStartPacket) Decode(d *wire.Decoder) error {
	username, err := d.ReadString()
	if err != nil {
		return err
	}
	id, err := d.ReadUUID()
	if err != nil {
		return err
	}
	p.Username = username
	p.UUID = id
	return nil
}

func (p *LoginStartPacket) Encode(e *wire.Encoder) {
	e.WriteString(p.Username)
	e.WriteUUID(p.UUID)
}

// LoginDisconnectPacket rejects a login attempt before it reaches Configuration.
// Supplemented from original_source/ (SPEC_FULL.md §4.3.1); not present in spec.md's
// closed inventory table but excluded by no Non-goal there.
type LoginDisconnectPacket struct {
	Reason string // chat-component JSON
}

func (p *LoginDisconnectPacket) ID() int32              { return idLoginDisconnect }
func (p *LoginDisconnectPacket) Encode(e *wire.Encoder) { e.WriteString(p.Reason) }

// LoginSuccessPacket completes the Login phase and elicits LoginAcknowledged.
type LoginSuccessPacket struct {
	UUID                uuid.UUID
	Username            string
	Properties          []Property
	StrictErrorHandling bool
}

func (p *LoginSuccessPacket) ID() int32 { return idLoginSuccess }

func (p *LoginSuccessPacket) Encode(e *wire.Encoder) {
	e.WriteUUID(p.UUID)
	e.WriteString(p.Username)
	wire.WriteArray(e, p.Properties, encodeProperty)
	e.WriteBool(p.StrictErrorHandling)
}

func (p *LoginSuccessPacket) Decode(d *wire.Decoder) error {
	id, err := d.ReadUUID()
	if err != nil {
		return err
	}
	username, err := d.ReadString()
	if err != nil {
		return err
	}
	props, err := wire.ReadArray(d, decodeProperty)
	if err != nil {
		return err
	}
	strict, err := d.ReadBool()
	if err != nil {
		return err
	}
	p.UUID = id
	p.Username = username
	p.Properties = props
	p.StrictErrorHandling = strict
	return nil
}

// LoginAcknowledgedPacket carries no fields; receiving it transitions Login ->
// Configuration (spec.md §4.4).
type LoginAcknowledgedPacket struct{}

func (p *LoginAcknowledgedPacket) ID() int32                { return idLoginAcknowledged }
func (p *LoginAcknowledgedPacket) Decode(d *wire.Decoder) error { return nil }

func init() {
	registerServerbound(Login, idLoginStart, "LoginStart", func() ServerboundPacket { return &LoginStartPacket{} })
	registerServerbound(Login, idLoginAcknowledged, "LoginAcknowledged", func() ServerboundPacket { return &LoginAcknowledgedPacket{} })
}
