package lint

import (
	"github.com/ormasoftchile/lv2lint/pkg/store"
	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

var (
	findClassNotValid = Finding{
		Severity:  SeverityFail,
		Message:   "lv2:Port class <%s> not valid",
		Reference: vocab.LV2Port,
	}
	findPropertyNotValid = Finding{
		Severity:  SeverityFail,
		Message:   "lv2:portProperty <%s> not valid",
		Reference: vocab.LV2PortProp,
	}
	findRangeInvalid = Finding{
		Severity:  SeverityFail,
		Message:   "range invalid (min <= default <= max)",
		Reference: vocab.LV2Port,
	}
	findEventPortDeprecated = Finding{
		Severity:  SeverityFail,
		Message:   "lv2:EventPort is deprecated, use atom:AtomPort instead",
		Reference: vocab.EventEventPort,
	}
	findCommentNotFound = Finding{
		Severity:  SeverityNote,
		Message:   "rdfs:comment not found",
		Reference: vocab.RDFSComment,
	}
	findCommentNotString = Finding{
		Severity:  SeverityFail,
		Message:   "rdfs:comment not a string",
		Reference: vocab.RDFSComment,
	}
	findGroupNotFound = Finding{
		Severity:  SeverityNote,
		Message:   "pg:group not found",
		Reference: vocab.PGGroup,
	}
	findGroupNotURI = Finding{
		Severity:  SeverityFail,
		Message:   "pg:group not a URI",
		Reference: vocab.PGGroup,
	}
)

// report hands out a copy so the shared templates stay untouched.
func report(f Finding) *Finding {
	return &f
}

// firstOutside returns the first member of have that is not in valid.
// Only the first violation is reported per rule.
func firstOutside(have, valid store.Nodes) (string, bool) {
	for _, n := range have {
		if !valid.Contains(n) {
			return n, true
		}
	}
	return "", false
}

func checkClass(st store.Store, ctx *Context) *Finding {
	valid := st.SubclassClosure(vocab.LV2Port)
	if len(valid) == 0 {
		return nil
	}
	if bad, ok := firstOutside(st.Classes(ctx.Port), valid); ok {
		ctx.SetURN(bad)
		return report(findClassNotValid)
	}
	return nil
}

func checkProperties(st store.Store, ctx *Context) *Finding {
	valid := st.AllowedProperties()
	if len(valid) == 0 {
		return nil
	}
	if bad, ok := firstOutside(st.PortProperties(ctx.Port), valid); ok {
		ctx.SetURN(bad)
		return report(findPropertyNotValid)
	}
	return nil
}

func isControlOrCV(st store.Store, port store.Port) bool {
	return st.HasClass(port, vocab.LV2ControlPort) || st.HasClass(port, vocab.LV2CVPort)
}

// checkRange reads the slots written by the numeric rules. Slots whose rule
// was skipped or reported hold their fallback and are not re-reported here.
func checkRange(st store.Store, ctx *Context) *Finding {
	if !isControlOrCV(st, ctx.Port) {
		return nil
	}
	if !(ctx.Minimum <= ctx.Default && ctx.Default <= ctx.Maximum) {
		return report(findRangeInvalid)
	}
	return nil
}

func checkEventPort(st store.Store, ctx *Context) *Finding {
	if st.HasClass(ctx.Port, vocab.EventEventPort) {
		return report(findEventPortDeprecated)
	}
	return nil
}

func checkComment(st store.Store, ctx *Context) *Finding {
	v, ok := st.Literal(ctx.Port, vocab.RDFSComment)
	switch {
	case !ok:
		return report(findCommentNotFound)
	case !v.IsString():
		return report(findCommentNotString)
	}
	return nil
}

func checkGroup(st store.Store, ctx *Context) *Finding {
	v, ok := st.Literal(ctx.Port, vocab.PGGroup)
	switch {
	case !ok:
		return report(findGroupNotFound)
	case !v.IsURI():
		return report(findGroupNotURI)
	}
	return nil
}
