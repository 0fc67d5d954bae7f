package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

// RawRecord is one entry of a dataset file's "data" array.
type RawRecord struct {
	Employee *RawEmployee `json:"employee"`
}

// RawEmployee is an employee as it appears in source files.
type RawEmployee struct {
	EmpID          string             `json:"empID"`
	Name           string             `json:"name"`
	JobLevel       string             `json:"jobLevel"`
	Company        string             `json:"company"`
	MailID         string             `json:"mailID"`
	Skills         []RawSkill         `json:"skills"`
	Courses        []RawCourse        `json:"courses"`
	Certifications []RawCertification `json:"certifications"`
}

type RawSkill struct {
	Skill struct {
		Path string `json:"path"`
	} `json:"skill"`
	Proficiency           looseString `json:"proficiency"`
	IsPrimary             looseString `json:"isPrimary"`
	IsCurrent             looseString `json:"isCurrent"`
	ExperienceProjectMths looseInt    `json:"experienceProjectMths"`
}

type RawCourse struct {
	Course struct {
		CourseName string `json:"courseName"`
	} `json:"course"`
	CompletedOn looseString `json:"completedon"`
}

type RawCertification struct {
	Certification struct {
		CertificationName string `json:"certificationName"`
	} `json:"certification"`
	CertifiedOn looseString `json:"certifiedon"`
}

type rawFile struct {
	Data []RawRecord `json:"data"`
}

// LoadRecords decodes one dataset file. A file without a "data" array
// yields no records.
func LoadRecords(r io.Reader) ([]RawRecord, error) {
	var f rawFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	return f.Data, nil
}

// LoadDir loads every file matching pattern, in sorted order, and
// concatenates their records.
func LoadDir(pattern string) ([]RawRecord, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	var records []RawRecord
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		batch, err := LoadRecords(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		records = append(records, batch...)
	}
	return records, nil
}

// looseString accepts strings, booleans and numbers. Anything else reads as
// empty.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		*s = looseString(t)
	case bool:
		if t {
			*s = "YES"
		} else {
			*s = "NO"
		}
	case float64:
		*s = looseString(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}

// looseInt accepts numbers and numeric strings. Null and anything else read
// as zero; fractions are truncated.
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		*n = looseInt(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = looseInt(f)
	default:
		*n = 0
	}
	return nil
}
