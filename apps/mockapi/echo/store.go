package echoapi

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/evaluation"
	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/paper"
	"github.com/vamsidulam/exameval/core/student"
	"github.com/vamsidulam/exameval/core/timetable"
)

type account struct {
	username     string
	passwordHash []byte
}

// Store is the whole backend state, in memory.
type Store struct {
	mu sync.RWMutex

	account    account
	templates  map[string]exam.Template
	papers     map[string]paper.QuestionPaper
	students   map[string]student.Student
	keySheets  map[string]evaluation.KeySheet
	scripts    map[string]evaluation.StudentScript
	results    map[string]evaluation.EvaluationResult
	timetables map[string]timetable.Timetable
}

// NewStore seeds the configured teacher account so login works out of the box.
func NewStore() *Store {
	hash, _ := bcrypt.GenerateFromPassword([]byte(core.Conf.GetString("seedTeacherPassword")), bcrypt.MinCost)
	return &Store{
		account: account{
			username:     core.Conf.GetString("seedTeacherUsername"),
			passwordHash: hash,
		},
		templates:  make(map[string]exam.Template),
		papers:     make(map[string]paper.QuestionPaper),
		students:   make(map[string]student.Student),
		keySheets:  make(map[string]evaluation.KeySheet),
		scripts:    make(map[string]evaluation.StudentScript),
		results:    make(map[string]evaluation.EvaluationResult),
		timetables: make(map[string]timetable.Timetable),
	}
}

func (st *Store) checkLogin(username, password string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if username != st.account.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(st.account.passwordHash, []byte(password)) == nil
}

// templates

func (st *Store) createTemplate(tpl exam.Template) exam.Template {
	st.mu.Lock()
	defer st.mu.Unlock()
	tpl.ID = uuid.New().String()
	st.templates[tpl.ID] = tpl
	return tpl
}

func (st *Store) getTemplate(id string) (exam.Template, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	tpl, ok := st.templates[id]
	return tpl, ok
}

func (st *Store) updateTemplate(tpl exam.Template) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.templates[tpl.ID]; !ok {
		return false
	}
	st.templates[tpl.ID] = tpl
	return true
}

func (st *Store) deleteTemplate(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.templates[id]; !ok {
		return false
	}
	delete(st.templates, id)
	return true
}

func (st *Store) listTemplates() []exam.Template {
	st.mu.RLock()
	defer st.mu.RUnlock()
	tpls := make([]exam.Template, 0, len(st.templates))
	for _, tpl := range st.templates {
		tpls = append(tpls, tpl)
	}
	sort.Slice(tpls, func(i, j int) bool { return tpls[i].Name < tpls[j].Name })
	return tpls
}

// papers

func (st *Store) createPaper(p paper.QuestionPaper) paper.QuestionPaper {
	st.mu.Lock()
	defer st.mu.Unlock()
	p.ID = uuid.New().String()
	st.papers[p.ID] = p
	return p
}

func (st *Store) getPaper(id string) (paper.QuestionPaper, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	p, ok := st.papers[id]
	return p, ok
}

func (st *Store) savePaper(p paper.QuestionPaper) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.papers[p.ID]; !ok {
		return false
	}
	st.papers[p.ID] = p
	return true
}

func (st *Store) deletePaper(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.papers[id]; !ok {
		return false
	}
	delete(st.papers, id)
	return true
}

func (st *Store) listPapers() []paper.QuestionPaper {
	st.mu.RLock()
	defer st.mu.RUnlock()
	papers := make([]paper.QuestionPaper, 0, len(st.papers))
	for _, p := range st.papers {
		papers = append(papers, p)
	}
	sort.Slice(papers, func(i, j int) bool { return papers[i].Name < papers[j].Name })
	return papers
}

// students

func (st *Store) studentIDExists(studentID string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.students {
		if s.StudentID == studentID {
			return true
		}
	}
	return false
}

func (st *Store) createStudent(s student.Student) student.Student {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.ID = uuid.New().String()
	if s.Status == "" {
		s.Status = "active"
	}
	st.students[s.ID] = s
	return s
}

func (st *Store) updateStudent(s student.Student) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.students[s.ID]; !ok {
		return false
	}
	st.students[s.ID] = s
	return true
}

func (st *Store) deleteStudent(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.students[id]; !ok {
		return false
	}
	delete(st.students, id)
	return true
}

func (st *Store) listStudents() []student.Student {
	st.mu.RLock()
	defer st.mu.RUnlock()
	students := make([]student.Student, 0, len(st.students))
	for _, s := range st.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })
	return students
}

// evaluation

func (st *Store) createKeySheet(ks evaluation.KeySheet) evaluation.KeySheet {
	st.mu.Lock()
	defer st.mu.Unlock()
	ks.ID = uuid.New().String()
	st.keySheets[ks.ID] = ks
	return ks
}

func (st *Store) keySheetExists(id string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.keySheets[id]
	return ok
}

// keyMetadata is the stub for the backend's parsed view of a key sheet. The
// real backend extracts these from the document; the mock fixes them.
func (st *Store) keyMetadata(id string) (evaluation.KeyMetadata, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ks, ok := st.keySheets[id]
	if !ok {
		return evaluation.KeyMetadata{}, false
	}
	return evaluation.KeyMetadata{
		KeySheetID:     ks.ID,
		TotalQuestions: 10,
		TotalMarks:     100,
		Subject:        ks.Subject,
	}, true
}

func (st *Store) listKeySheets() []evaluation.KeySheet {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sheets := make([]evaluation.KeySheet, 0, len(st.keySheets))
	for _, ks := range st.keySheets {
		sheets = append(sheets, ks)
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].ClassName < sheets[j].ClassName })
	return sheets
}

func (st *Store) createScript(sc evaluation.StudentScript) evaluation.StudentScript {
	st.mu.Lock()
	defer st.mu.Unlock()
	sc.ID = uuid.New().String()
	sc.Status = "pending"
	st.scripts[sc.ID] = sc
	return sc
}

func (st *Store) listScripts(keySheetID string) []evaluation.StudentScript {
	st.mu.RLock()
	defer st.mu.RUnlock()
	scripts := make([]evaluation.StudentScript, 0, len(st.scripts))
	for _, sc := range st.scripts {
		if keySheetID == "" || sc.KeySheetID == keySheetID {
			scripts = append(scripts, sc)
		}
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].StudentID < scripts[j].StudentID })
	return scripts
}

// evaluateScripts grades every pending script for a key sheet with a fixed,
// repeatable stub score. The real backend does OCR+NLP; the mock only has
// to be deterministic.
func (st *Store) evaluateScripts(keySheetID string) []evaluation.EvaluationResult {
	st.mu.Lock()
	defer st.mu.Unlock()

	var out []evaluation.EvaluationResult
	for id, sc := range st.scripts {
		if sc.KeySheetID != keySheetID || sc.Status != "pending" {
			continue
		}
		res := evaluation.EvaluationResult{
			ID:         uuid.New().String(),
			StudentID:  sc.StudentID,
			ScriptID:   sc.ID,
			KeySheetID: keySheetID,
			Score:      stubScore(sc.StudentID),
			MaxScore:   100,
			Status:     "evaluated",
		}
		sc.Status = "evaluated"
		st.scripts[id] = sc
		st.results[res.ID] = res
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out
}

func (st *Store) listResults(keySheetID string) []evaluation.EvaluationResult {
	st.mu.RLock()
	defer st.mu.RUnlock()
	results := make([]evaluation.EvaluationResult, 0, len(st.results))
	for _, r := range st.results {
		if keySheetID == "" || r.KeySheetID == keySheetID {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].StudentID < results[j].StudentID })
	return results
}

func (st *Store) stats(keySheetID string) evaluation.ResultStats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	stats := evaluation.ResultStats{}
	var sum float64
	for _, r := range st.results {
		if keySheetID != "" && r.KeySheetID != keySheetID {
			continue
		}
		stats.Evaluated++
		sum += r.Score
		if r.Score > stats.Highest {
			stats.Highest = r.Score
		}
		if stats.Lowest == 0 || r.Score < stats.Lowest {
			stats.Lowest = r.Score
		}
	}
	for _, sc := range st.scripts {
		if (keySheetID == "" || sc.KeySheetID == keySheetID) && sc.Status == "pending" {
			stats.Pending++
		}
	}
	if stats.Evaluated > 0 {
		stats.Average = sum / float64(stats.Evaluated)
	}
	return stats
}

// timetable

func (st *Store) createTimetable(tt timetable.Timetable) timetable.Timetable {
	st.mu.Lock()
	defer st.mu.Unlock()
	tt.ID = uuid.New().String()
	st.timetables[tt.ID] = tt
	return tt
}

func (st *Store) listTimetables(className string) []timetable.Timetable {
	st.mu.RLock()
	defer st.mu.RUnlock()
	tts := make([]timetable.Timetable, 0, len(st.timetables))
	for _, tt := range st.timetables {
		if className == "" || tt.ClassName == className {
			tts = append(tts, tt)
		}
	}
	sort.Slice(tts, func(i, j int) bool { return tts[i].ClassName < tts[j].ClassName })
	return tts
}

// stubScore maps a student id onto a stable score in [40, 95].
func stubScore(studentID string) float64 {
	var h uint32
	for _, r := range studentID {
		h = h*31 + uint32(r)
	}
	return float64(40 + h%56)
}
