package store

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/owais-io/sixer/internal/models"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// encodeArticle renders an article as a front-matter file: a YAML metadata
// header between --- delimiters, followed by the body text.
func encodeArticle(a *models.Article) ([]byte, error) {
	header, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(header)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')

	if a.BodyText != "" {
		buf.WriteByte('\n')
		buf.WriteString(a.BodyText)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// decodeArticle parses a front-matter file back into an article.
func decodeArticle(data []byte) (*models.Article, error) {
	content := string(data)

	if !strings.HasPrefix(content, frontMatterDelimiter+"\n") {
		return nil, fmt.Errorf("missing front matter delimiter")
	}
	content = content[len(frontMatterDelimiter)+1:]

	end := strings.Index(content, "\n"+frontMatterDelimiter+"\n")
	if end < 0 {
		return nil, fmt.Errorf("unterminated front matter")
	}

	var article models.Article
	if err := yaml.Unmarshal([]byte(content[:end+1]), &article); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	body := content[end+len(frontMatterDelimiter)+2:]
	article.BodyText = strings.TrimSpace(body)

	return &article, nil
}
