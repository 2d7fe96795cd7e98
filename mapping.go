package formbind

// Mapping binds one external field name to one attribute on its mapper's
// target. It owns at most one Reader and one Writer; a missing strategy
// means the corresponding direction is not exposed, which is never an error.
type Mapping struct {
	mapper     *Mapper
	name       string
	fullName   string
	targetAttr string
	reader     Reader
	writer     Writer
	multiparam MultiparamKind
}

func newMapping(m *Mapper, spec MappingSpec) (*Mapping, error) {
	full := spec.Name
	if m.suffix != "" {
		full = full + "_" + m.suffix
	}
	attrName := spec.TargetAttribute
	if attrName == "" {
		attrName = spec.Name
	}
	mp := &Mapping{
		mapper:     m,
		name:       spec.Name,
		fullName:   full,
		targetAttr: attrName,
		multiparam: spec.Multiparam,
	}
	r, err := spec.Reader.resolve()
	if err != nil {
		return nil, pathIssues(err, "/"+full)
	}
	mp.reader = r
	mp.writer = spec.Writer.resolve()
	return mp, nil
}

// Name returns the external field name as declared.
func (m *Mapping) Name() string { return m.name }

// FullName returns the externally visible identifier, suffixed when the
// owning mapper is suffixed. FullNames are unique across a composed tree.
func (m *Mapping) FullName() string { return m.fullName }

// TargetAttribute returns the attribute name on the target object.
func (m *Mapping) TargetAttribute() string { return m.targetAttr }

// Multiparam reports the composite-key kind this binding expects, if any.
// Component folding itself is done by the params collaborator
// (FoldMultiparams), not here.
func (m *Mapping) Multiparam() MultiparamKind { return m.multiparam }

// Mapper returns the owning mapper instance.
func (m *Mapping) Mapper() *Mapper { return m.mapper }

// ReadAsParams returns {fullName: value} when a Reader is present, or an
// empty Params otherwise. Strategy errors propagate unmodified.
func (m *Mapping) ReadAsParams() (Params, error) {
	if m.reader == nil {
		return Params{}, nil
	}
	v, err := m.reader.Read(m, m.mapper.target)
	if err != nil {
		return nil, err
	}
	return Params{m.fullName: v}, nil
}

// WriteFromParams writes the value stored under fullName when both the key
// and a Writer are present. It returns the written value and whether a write
// happened. Strategy errors propagate unmodified.
func (m *Mapping) WriteFromParams(p Params) (any, bool, error) {
	if m.writer == nil {
		return nil, false, nil
	}
	v, ok := p[m.fullName]
	if !ok {
		return nil, false, nil
	}
	if err := m.writer.Write(m, m.mapper.target, v); err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// pathIssues rewrites root-path issues onto the mapping's field path so
// configuration errors point at the offending field.
func pathIssues(err error, path string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = path
		}
		out[i] = it
	}
	return out
}
