package content

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.json
var defaultContent []byte

// Default returns the embedded portfolio records.
func Default() (data Data, err error) {
	err = json.Unmarshal(defaultContent, &data)
	if err != nil {
		err = errors.Wrap(err, "failed to parse embedded content")
		return data, err
	}

	err = data.Validate()
	if err != nil {
		err = errors.Wrap(err, "embedded content validation failed")
		return data, err
	}

	return data, err
}

// Load reads portfolio records from a JSON or YAML file. The format is chosen
// by extension: .yaml and .yml are YAML, anything else is JSON.
func Load(path string) (data Data, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return data, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(fileData, &data)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse content YAML: %s", path)
			return data, err
		}
	default:
		err = json.Unmarshal(fileData, &data)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse content JSON: %s", path)
			return data, err
		}
	}

	err = data.Validate()
	if err != nil {
		err = errors.Wrapf(err, "content validation failed: %s", path)
		return data, err
	}

	return data, err
}

// LoadOrDefault loads path, or the embedded records when path is empty.
func LoadOrDefault(path string) (data Data, err error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Validate checks that the records are complete enough to lay out every panel.
func (d *Data) Validate() (err error) {
	if d.Profile.Name == "" {
		err = errors.New("profile name is required")
		return err
	}

	for i, link := range d.Links {
		if link.Label == "" || link.URL == "" {
			err = errors.Errorf("link at index %d needs a label and a url", i)
			return err
		}
		if link.Color != "" {
			if _, err = common.ParseHexColor(link.Color); err != nil {
				err = errors.Wrapf(err, "link %s", link.Label)
				return err
			}
		}
	}

	if len(d.Skills) != SkillFaces {
		err = errors.Errorf("expected %d skill categories, found %d", SkillFaces, len(d.Skills))
		return err
	}
	for i, skill := range d.Skills {
		if skill.Title == "" {
			err = errors.Errorf("skill category at index %d missing title", i)
			return err
		}
		if _, err = common.ParseHexColor(skill.Color); err != nil {
			err = errors.Wrapf(err, "skill category %s", skill.Title)
			return err
		}
	}

	if len(d.Experience) == 0 {
		err = errors.New("no experience entries found")
		return err
	}
	for i, exp := range d.Experience {
		if exp.Company == "" {
			err = errors.Errorf("experience at index %d missing company", i)
			return err
		}
		if exp.Role == "" {
			err = errors.Errorf("experience %s missing role", exp.Company)
			return err
		}
	}

	if len(d.Projects) == 0 {
		err = errors.New("no projects found")
		return err
	}
	for i, project := range d.Projects {
		if project.Title == "" {
			err = errors.Errorf("project at index %d missing title", i)
			return err
		}
	}

	if len(d.Achievements) == 0 {
		err = errors.New("no achievements found")
		return err
	}
	for i, achievement := range d.Achievements {
		if achievement.Title == "" {
			err = errors.Errorf("achievement at index %d missing title", i)
			return err
		}
	}

	return err
}
