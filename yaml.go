package peoplegen

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML writes a single document with a sequence of records under
// the top-level people key. Records are built as explicit mapping nodes
// because yaml.v3 would otherwise sort map keys.
func writeYAML(w io.Writer, opts WriteOptions, people People) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i, p := range people {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, kv := range p.Record(i+1, opts) {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: kv.Value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: opts.Headers.peopleKey()},
			seq,
		},
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
