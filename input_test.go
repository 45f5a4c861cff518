package vtkernel

import (
	"bytes"
	"testing"
)

func TestEncodeKeyApplicationCursorKeys(t *testing.T) {
	if got := EncodeKey(KeyUp, false); !bytes.Equal(got, []byte("\x1b[A")) {
		t.Fatalf("normal mode Up = %q, want ESC[A", got)
	}
	if got := EncodeKey(KeyUp, true); !bytes.Equal(got, []byte("\x1bOA")) {
		t.Fatalf("application mode Up = %q, want ESC O A", got)
	}
}

// TestCursorKeysInApplicationModeViaInterpreter verifies that after the
// interpreter processes CSI ?1h, the input layer (driven off
// Interpreter.Modes) encodes Up as ESC O A, not ESC [ A.
func TestCursorKeysInApplicationModeViaInterpreter(t *testing.T) {
	_, ip, p := newTestInterpreter(80, 24)
	p.Advance([]byte("\x1b[?1h"))

	if !ip.Modes().ApplicationCursorKeys {
		t.Fatal("expected application cursor keys mode enabled")
	}

	got := EncodeKey(KeyUp, ip.Modes().ApplicationCursorKeys)
	if !bytes.Equal(got, []byte("\x1bOA")) {
		t.Fatalf("Up encoded as %q, want ESC O A", got)
	}
}

func TestEncodeCtrlLetter(t *testing.T) {
	got := EncodeCtrlLetter('c')
	if !bytes.Equal(got, []byte{0x03}) {
		t.Fatalf("Ctrl+c = %v, want [0x03]", got)
	}
	if EncodeCtrlLetter('1') != nil {
		t.Fatal("expected nil for non-letter")
	}
}

func TestEncodePaste(t *testing.T) {
	got := EncodePaste("hi", true)
	want := []byte("\x1b[200~hi\x1b[201~")
	if !bytes.Equal(got, want) {
		t.Fatalf("bracketed paste = %q, want %q", got, want)
	}
	if got := EncodePaste("hi", false); !bytes.Equal(got, []byte("hi")) {
		t.Fatalf("plain paste = %q, want \"hi\"", got)
	}
}

func TestEncodeFunctionKey(t *testing.T) {
	if got := EncodeFunctionKey(5); !bytes.Equal(got, []byte("\x1b[15~")) {
		t.Fatalf("F5 = %q, want ESC[15~", got)
	}
	if EncodeFunctionKey(13) != nil {
		t.Fatal("expected nil outside F5-F12 range")
	}
}

func TestEncodeMouseRequiresTrackingEnabled(t *testing.T) {
	if EncodeMouse(MouseButtonLeft, 1, 1, false, false) != nil {
		t.Fatal("expected nil when tracking disabled")
	}
	got := EncodeMouse(MouseButtonLeft, 5, 10, false, true)
	want := []byte("\x1b[<0;5;10M")
	if !bytes.Equal(got, want) {
		t.Fatalf("mouse press = %q, want %q", got, want)
	}
}
