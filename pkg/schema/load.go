package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlSchema mirrors the on-disk schema document shape, grounded on the
// teacher's frontmatter.go yaml.v3 unmarshal-then-validate pattern.
type yamlSchema struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Nullable   bool   `yaml:"nullable"`
	PrimaryKey bool   `yaml:"primary_key"`
}

// LoadYAML parses a schema document of the form:
//
//	tables:
//	  - name: users
//	    columns:
//	      - name: id
//	        type: INTEGER
//	        primary_key: true
//	      - name: email
//	        type: VARCHAR
//
// into a *Schema. An unrecognized column type is an error rather than a
// silent Unknown, since a schema used for validation must be unambiguous.
func LoadYAML(data []byte) (*Schema, error) {
	var doc yamlSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema YAML: %w", err)
	}

	s := New()
	for _, yt := range doc.Tables {
		t := NewTable(yt.Name)
		for _, yc := range yt.Columns {
			dt, ok := dataTypes[yc.Type]
			if !ok {
				return nil, fmt.Errorf("table %s: column %s: unknown type %q", yt.Name, yc.Name, yc.Type)
			}
			t.AddColumn(Column{
				Name:       yc.Name,
				DataType:   dt,
				Nullable:   yc.Nullable,
				PrimaryKey: yc.PrimaryKey,
			})
		}
		s.AddTable(t)
	}
	return s, nil
}

var dataTypes = map[string]DataType{
	"INTEGER": Integer, "BIGINT": BigInt, "DECIMAL": Decimal,
	"FLOAT": Float, "DOUBLE": Double, "VARCHAR": Varchar, "CHAR": Char,
	"TEXT": Text, "DATE": Date, "TIME": Time, "TIMESTAMP": Timestamp,
	"BOOLEAN": Boolean, "BLOB": Blob, "CLOB": Clob,
}
