package module

import (
	"testing"

	phttp "lingo/internal/platform/net/http"
)

type echoPort interface{ Echo(string) string }

type echoImpl struct{}

func (echoImpl) Echo(s string) string { return s }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

func TestPortsOf_DirectImplement(t *testing.T) {
	m := fakeModule{name: "resolve", ports: echoImpl{}}
	p, ok := PortsOf[echoPort](m)
	if !ok {
		t.Fatal("expected direct port")
	}
	if got := p.Echo("hi"); got != "hi" {
		t.Fatalf("got %q", got)
	}
}

func TestPortsOf_StructFieldWalk(t *testing.T) {
	type bundle struct {
		Echo echoPort
	}
	m := fakeModule{name: "resolve", ports: bundle{Echo: echoImpl{}}}
	if _, ok := PortsOf[echoPort](m); !ok {
		t.Fatal("expected port from struct field")
	}
}

func TestPortsOf_MissingReturnsFalse(t *testing.T) {
	m := fakeModule{name: "resolve", ports: struct{ N int }{N: 1}}
	if _, ok := PortsOf[echoPort](m); ok {
		t.Fatal("expected no port")
	}
}

func TestMustPortsOf_PanicsWhenMissing(t *testing.T) {
	m := fakeModule{name: "resolve", ports: nil}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustPortsOf[echoPort](m)
}

func TestRegistry_RoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("resolve", echoImpl{})
	p, ok := PortsAs[echoPort]("resolve")
	if !ok {
		t.Fatal("expected registered port")
	}
	if got := p.Echo("x"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if _, ok := PortsAs[echoPort]("missing"); ok {
		t.Fatal("expected miss for unknown name")
	}
}
