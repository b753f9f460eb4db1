package crypto

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"
)

func TestTransform_XorAndLength(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0x10, 0x20}
	key := []byte{0x0F, 0xF0}

	out, err := Transform(data, key)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := []byte{0x0F, 0xF1, 0xF0, 0xE0, 0x2F}
	if !bytes.Equal(out, want) {
		t.Fatalf("want %x, got %x", want, out)
	}
	if len(out) != len(data) {
		t.Fatalf("length mismatch: %d != %d", len(out), len(data))
	}
}

func TestTransform_SelfInverseAndDeterministic(t *testing.T) {
	keys := [][]byte{[]byte("k"), []byte("longer-secret-key"), {0x00, 0x01}, {0xFF}}
	inputs := [][]byte{nil, {}, []byte("hello"), {0x00, 0xFF, 0x80, 0x7F}, bytes.Repeat([]byte("abc"), 100)}

	for _, k := range keys {
		for _, d := range inputs {
			once, err := Transform(d, k)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			again, _ := Transform(d, k)
			if !bytes.Equal(once, again) {
				t.Fatalf("transform is not deterministic for key %x", k)
			}
			back, _ := Transform(once, k)
			if !bytes.Equal(back, d) {
				t.Fatalf("transform is not self-inverse: %x -> %x", d, back)
			}
		}
	}
}

// входные данные не должны меняться на месте
func TestTransform_DoesNotMutateInput(t *testing.T) {
	data := []byte("hello")
	_, _ = Transform(data, []byte("k"))
	if string(data) != "hello" {
		t.Fatalf("input was mutated: %q", data)
	}
}

func TestEmptyKey_Rejected(t *testing.T) {
	if _, err := Transform([]byte("x"), nil); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Transform: want ErrInvalidKey, got %v", err)
	}
	// пустые данные тоже не обходят проверку ключа
	if _, err := Transform(nil, []byte{}); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Transform(empty data): want ErrInvalidKey, got %v", err)
	}
	if _, err := Encrypt("x", []byte{}); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Encrypt: want ErrInvalidKey, got %v", err)
	}
	if _, err := Decrypt([]byte("x"), nil); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Decrypt: want ErrInvalidKey, got %v", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := []byte("s3cr3t")
	cases := []string{"", "hello", "Привет, мир", "日本語テキスト", "emoji 🚀🔥", "line1\nline2\ttab"}
	for _, s := range cases {
		c, err := Encrypt(s, key)
		if err != nil {
			t.Fatalf("encrypt %q: %v", s, err)
		}
		if len(c) != len([]byte(s)) {
			t.Fatalf("cipher length %d != plaintext length %d", len(c), len(s))
		}
		got, err := Decrypt(c, key)
		if err != nil {
			t.Fatalf("decrypt %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("round-trip failed: want %q, got %q", s, got)
		}
	}
}

func TestEncrypt_OpaqueAtRest(t *testing.T) {
	c, err := Encrypt("hello", []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(c, []byte("hello")) {
		t.Fatalf("cipher must differ from plaintext bytes")
	}
}

func TestDecrypt_WrongKeyIsLenient(t *testing.T) {
	c, err := Encrypt("Привет", []byte("right"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decrypt(c, []byte("wrong"))
	if err != nil {
		t.Fatalf("wrong key must not fail, got %v", err)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("decoded text must be valid UTF-8: %q", got)
	}
	if got == "Привет" {
		t.Fatalf("wrong key must not round-trip")
	}
}

func TestDecrypt_InvalidSequencesReplaced(t *testing.T) {
	key := []byte{0x00, 0x01}
	// после XOR получаем: 'a', 0xFF (невалидный байт), 'b'
	c, _ := Transform([]byte{'a', 0xFF, 'b'}, key)
	got, err := Decrypt(c, key)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a\ufffdb" {
		t.Fatalf("want replacement char, got %q", got)
	}
}

func TestNewCipher(t *testing.T) {
	if _, err := NewCipher(nil); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("empty key: want ErrInvalidKey, got %v", err)
	}
	_, err := NewCipher([]byte{0, 0, 0})
	if !errors.Is(err, ErrInvalidKey) || !errors.Is(err, ErrWeakKey) {
		t.Fatalf("zero key: want ErrInvalidKey+ErrWeakKey, got %v", err)
	}

	key := []byte("abc")
	c, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	// изменение исходного слайса не влияет на Cipher
	key[0] = 'z'
	enc, err := c.Encrypt("note body")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Encrypt("note body", []byte("abc"))
	if !bytes.Equal(enc, want) {
		t.Fatalf("cipher must keep its own copy of the key")
	}
	dec, err := c.Decrypt(enc)
	if err != nil || dec != "note body" {
		t.Fatalf("decrypt: %q, %v", dec, err)
	}
}
