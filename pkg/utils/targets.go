package utils

import (
	"fmt"
	"os"

	"review-cloud/internal/data/entity"

	"gopkg.in/yaml.v3"
)

// DefaultTargets are the two movies of the original review analysis.
func DefaultTargets() []entity.Target {
	return []entity.Target{
		{
			Title: "올빼미",
			Stopwords: []string{
				"영화", "진짜", "최고", "정말", "입니다", "만",
				"올해", "것", "꼭", "볼", "더", "보고", "류준",
				"중", "수", "간만", "때", "정도", "중간", "안",
				"감", "그냥", "이", "좀", "그", "하나", "있는", "거",
			},
		},
		{
			Title: "블랙 팬서: 와칸다 포에버",
			Stopwords: []string{
				"영화", "것", "진짜", "그냥", "볼", "더",
				"수", "정말", "이제", "좀", "안", "왜", "정도",
				"듯", "점", "편", "보고", "입니다", "부분", "분", "내",
			},
			RenderUnfiltered: true,
		},
	}
}

type targetsFile struct {
	Targets []entity.Target `yaml:"targets"`
}

// LoadTargets reads targets from a YAML file. An empty path yields DefaultTargets.
func LoadTargets(path string) ([]entity.Target, error) {
	if path == "" {
		return DefaultTargets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file %s: %w", path, err)
	}

	var file targetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}

	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s: no targets defined", path)
	}

	for i := range file.Targets {
		if errs := ValidateStruct(file.Targets[i]); len(errs) > 0 {
			return nil, fmt.Errorf("targets file %s: target %d validation failed: %s",
				path, i, FormatValidationErrors(errs))
		}
	}

	return file.Targets, nil
}
