package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
	"github.com/revelaction/arbol/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Labels: splitLabels(stmt.ColumnText(2)),
			}
			if !storage.HasLabel(doc.Labels, labelMatch) {
				return nil
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels, semgraph, paragraphs FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Labels = splitLabels(stmt.ColumnText(1))

			// paragraphs without sentences have no rows
			if n := stmt.ColumnInt(3); n > 0 {
				doc.Paragraphs = make([]sent.Paragraph, n)
			}

			if data := stmt.ColumnText(2); data != "" {
				var g sent.SemGraph
				if err := json.Unmarshal([]byte(data), &g); err != nil {
					return err
				}
				doc.SemGraph = &g
			}
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc id %d: %w", id, storage.ErrNotFound)
	}

	// sentences are stored in order with the index of their paragraph
	err = sqlitex.Execute(conn, "SELECT paragraph, data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			paragraph := stmt.ColumnInt(0)
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &s); err != nil {
				return err
			}

			if paragraph < 0 {
				return fmt.Errorf("doc id %d: negative paragraph index %d", id, paragraph)
			}

			for len(doc.Paragraphs) <= paragraph {
				doc.Paragraphs = append(doc.Paragraphs, sent.Paragraph{})
			}

			p := &doc.Paragraphs[paragraph]
			p.Sentences = append(p.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	// Build query dynamically based on number of lemmas.
	// We use INTERSECT to ensure that we only get sentence_rowids that contain ALL lemmas.
	// Note: INTERSECT also guarantees that the resulting set of rowIDs is unique.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, lemma, int64(after))
	}
	// a negative LIMIT means no limit in SQLite
	if limit <= 0 {
		limit = -1
	}
	queryBuilder.WriteString(" ORDER BY sentence_rowid LIMIT ?")
	args = append(args, limit)

	// We need to fetch the rowIDs first
	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	if len(rowIDs) == 0 {
		return after, nil
	}

	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}
	idList := strings.Join(idStrings, ",")

	query := fmt.Sprintf("SELECT s.rowid, s.doc_id, d.title, s.data FROM sentences s JOIN docs d ON s.doc_id = d.id WHERE s.rowid IN (%s) ORDER BY s.rowid", idList)

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}

			res := storage.SentenceResult{
				RowID:    rowID,
				DocID:    stmt.ColumnInt(1),
				DocTitle: stmt.ColumnText(2),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &res.Sentence); err != nil {
				return err
			}
			res.Sentence.DocId = res.DocID
			return onCandidate(res)
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	seen := map[string]bool{}
	labels := []string{}
	err = sqlitex.Execute(conn, "SELECT labels FROM docs", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, l := range splitLabels(stmt.ColumnText(0)) {
				if seen[l] || (pattern != "" && !strings.Contains(l, pattern)) {
					continue
				}
				seen[l] = true
				labels = append(labels, l)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(labels)
	return labels, nil
}

// Write inserts the doc, its sentences and the lemma index in one
// transaction.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	var semgraph interface{}
	if doc.SemGraph != nil {
		data, err := json.Marshal(doc.SemGraph)
		if err != nil {
			return err
		}
		semgraph = string(data)
	}

	// Insert Doc
	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels, semgraph, paragraphs) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, labels, semgraph, len(doc.Paragraphs)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for pIdx, p := range doc.Paragraphs {
		for _, s := range p.Sentences {
			data, err := json.Marshal(s)
			if err != nil {
				return err
			}

			err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, paragraph, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{docID, pIdx, string(data)},
			})
			if err != nil {
				return fmt.Errorf("failed to insert sentence: %w", err)
			}
			sentRowID := conn.LastInsertRowID()

			for _, lemma := range s.Lemmas() {
				err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
					Args: []interface{}{lemma, sentRowID},
				})
				if err != nil {
					return fmt.Errorf("failed to insert lemma: %w", err)
				}
			}
		}
	}

	return nil
}

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ",")
}
