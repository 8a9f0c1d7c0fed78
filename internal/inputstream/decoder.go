package inputstream

import (
	"bufio"
	"io"
)

// Decoder turns a terminal byte stream into a sequence of Events. A lone ESC
// not immediately followed by more buffered input is delivered as the
// "escape" key rather than held open waiting for a CSI sequence that never
// arrives.
type Decoder struct {
	r *bufio.Reader

	// pendingMoreInput reports whether another byte is already available
	// without blocking. When nil, the decoder assumes none is (so a lone
	// ESC always resolves immediately, matching the bounded ~50ms wait the
	// spec describes collapsing to zero in a non-interactive context).
	pendingMoreInput func() bool
}

// New wraps r for decoding.
func New(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// SetPendingCheck wires a host hook (e.g. termio.PendingInput) used to
// decide whether a lone ESC should wait briefly for a following CSI byte.
func (d *Decoder) SetPendingCheck(fn func() bool) {
	d.pendingMoreInput = fn
}

// Next decodes and returns the next event, blocking on the underlying
// reader as needed. Unrecognized escape sequences are consumed and dropped
// internally; Next keeps reading until it has a real event to deliver.
func (d *Decoder) Next() (Event, error) {
	for {
		ev, err := d.next()
		if err != nil {
			return Event{}, err
		}
		if ev == (Event{}) {
			continue
		}
		return ev, nil
	}
}

func (d *Decoder) next() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == 0x1B:
		return d.decodeEscape()
	case b == 0x7F:
		return keyEvent(KeyBackspace), nil
	case b == 0x1F:
		return keyEvent(ctrlKeyName(b)), nil
	case b >= 1 && b <= 26:
		if name := ctrlKeyName(b); name != "" {
			return keyEvent(name), nil
		}
		return charEvent(rune(b)), nil
	case b < 0x80:
		return charEvent(rune(b)), nil
	default:
		if err := d.r.UnreadByte(); err != nil {
			return Event{}, err
		}
		r, _, err := d.r.ReadRune()
		if err != nil {
			return Event{}, err
		}
		return charEvent(r), nil
	}
}

func (d *Decoder) moreInputAvailable() bool {
	if d.r.Buffered() > 0 {
		return true
	}
	if d.pendingMoreInput != nil {
		return d.pendingMoreInput()
	}
	return false
}

func (d *Decoder) decodeEscape() (Event, error) {
	if !d.moreInputAvailable() {
		return keyEvent(KeyEscape), nil
	}

	b2, err := d.r.ReadByte()
	if err != nil {
		return keyEvent(KeyEscape), nil
	}

	switch b2 {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		if err := d.r.UnreadByte(); err != nil {
			return Event{}, err
		}
		return keyEvent(KeyEscape), nil
	}
}

// decodeCSI consumes "ESC [ params final" and maps the recognized subset of
// VT100/xterm sequences to named keys. Unrecognized sequences are consumed
// and dropped rather than misreported.
func (d *Decoder) decodeCSI() (Event, error) {
	var params []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if b >= 0x40 && b <= 0x7E {
			return csiFinal(params, b), nil
		}
		params = append(params, b)
		if len(params) > 16 {
			return Event{}, nil // runaway sequence, drop
		}
	}
}

func csiFinal(params []byte, final byte) Event {
	switch final {
	case 'A':
		return keyEvent(KeyUp)
	case 'B':
		return keyEvent(KeyDown)
	case 'C':
		return keyEvent(KeyRight)
	case 'D':
		return keyEvent(KeyLeft)
	case 'H':
		return keyEvent(KeyHome)
	case 'F':
		return keyEvent(KeyEnd)
	case '~':
		return csiTildeFinal(params)
	default:
		return Event{} // unrecognized final byte: dropped
	}
}

func csiTildeFinal(params []byte) Event {
	switch string(params) {
	case "1", "7":
		return keyEvent(KeyHome)
	case "3":
		return keyEvent(KeyDelete)
	case "4", "8":
		return keyEvent(KeyEnd)
	case "5":
		return keyEvent(KeyPageUp)
	case "6":
		return keyEvent(KeyPageDown)
	case "11":
		return keyEvent(fnKeyName(1))
	case "12":
		return keyEvent(fnKeyName(2))
	case "13":
		return keyEvent(fnKeyName(3))
	case "14":
		return keyEvent(fnKeyName(4))
	case "15":
		return keyEvent(fnKeyName(5))
	case "17":
		return keyEvent(fnKeyName(6))
	case "18":
		return keyEvent(fnKeyName(7))
	case "19":
		return keyEvent(fnKeyName(8))
	case "20":
		return keyEvent(fnKeyName(9))
	case "21":
		return keyEvent(fnKeyName(10))
	case "23":
		return keyEvent(fnKeyName(11))
	case "24":
		return keyEvent(fnKeyName(12))
	default:
		return Event{}
	}
}

// decodeSS3 consumes "ESC O final" (PF-key encoding used by some terminals
// for F1-F4 and arrows in application-cursor mode).
func (d *Decoder) decodeSS3() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	switch b {
	case 'A':
		return keyEvent(KeyUp), nil
	case 'B':
		return keyEvent(KeyDown), nil
	case 'C':
		return keyEvent(KeyRight), nil
	case 'D':
		return keyEvent(KeyLeft), nil
	case 'H':
		return keyEvent(KeyHome), nil
	case 'F':
		return keyEvent(KeyEnd), nil
	case 'P':
		return keyEvent(fnKeyName(1)), nil
	case 'Q':
		return keyEvent(fnKeyName(2)), nil
	case 'R':
		return keyEvent(fnKeyName(3)), nil
	case 'S':
		return keyEvent(fnKeyName(4)), nil
	default:
		return Event{}, nil
	}
}
