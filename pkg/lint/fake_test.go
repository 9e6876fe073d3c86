package lint

import (
	"github.com/ormasoftchile/lv2lint/pkg/store"
	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

// fakeStore is a single-port Store whose answers are set field by field.
type fakeStore struct {
	validClasses store.Nodes
	classes      store.Nodes
	allowed      store.Nodes
	props        store.Nodes
	literals     map[string]store.Literal
	calls        int
}

func (f *fakeStore) HasClass(_ store.Port, class string) bool {
	f.calls++
	return f.classes.Contains(class)
}

func (f *fakeStore) Classes(store.Port) store.Nodes {
	f.calls++
	return f.classes
}

func (f *fakeStore) SubclassClosure(string) store.Nodes {
	f.calls++
	return f.validClasses
}

func (f *fakeStore) HasProperty(_ store.Port, prop string) bool {
	f.calls++
	return f.props.Contains(prop)
}

func (f *fakeStore) AllowedProperties() store.Nodes {
	f.calls++
	return f.allowed
}

func (f *fakeStore) PortProperties(store.Port) store.Nodes {
	f.calls++
	return f.props
}

func (f *fakeStore) Literal(_ store.Port, prop string) (store.Literal, bool) {
	f.calls++
	v, ok := f.literals[prop]
	return v, ok
}

var testPort = store.Port{Subject: "urn:ex:port0", Index: 0, Symbol: "gain"}

// controlInput returns a well-formed control input port with the given
// literals merged over a documented default set.
func controlInput(lits map[string]store.Literal, props ...string) *fakeStore {
	base := map[string]store.Literal{
		vocab.LV2Default:  store.Float(0.5),
		vocab.LV2Minimum:  store.Float(0),
		vocab.LV2Maximum:  store.Float(1),
		vocab.RDFSComment: store.String("Output gain"),
		vocab.PGGroup:     store.URI("urn:ex:group"),
	}
	for k, v := range lits {
		base[k] = v
	}
	return &fakeStore{
		validClasses: store.Nodes{vocab.LV2InputPort, vocab.LV2OutputPort, vocab.LV2ControlPort, vocab.LV2CVPort, vocab.EventEventPort},
		classes:      store.Nodes{vocab.LV2InputPort, vocab.LV2ControlPort},
		allowed:      store.Nodes{vocab.LV2Integer, vocab.LV2Toggled},
		props:        store.Nodes(props),
		literals:     base,
	}
}
