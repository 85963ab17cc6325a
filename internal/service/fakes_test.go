package service

import (
	"sort"

	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/AlexKurdi121/quizhub/internal/repository"
	"gorm.io/gorm"
)

// memStore is a shared in-memory backing for the fake repositories so the
// three of them see one coherent data set, the way the real ones share a DB.
type memStore struct {
	quizzes      []*model.Quiz
	participants []*model.Participant
	nextID       uint
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) quizByCode(code string) *model.Quiz {
	for _, q := range s.quizzes {
		if q.Code == code {
			return q
		}
	}
	return nil
}

func (s *memStore) quizByID(id uint) *model.Quiz {
	for _, q := range s.quizzes {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func (s *memStore) participantsOf(quizID uint) []model.Participant {
	var out []model.Participant
	for _, p := range s.participants {
		if p.QuizID == quizID {
			out = append(out, *p)
		}
	}
	return out
}

type fakeQuizRepo struct {
	store *memStore
}

var _ repository.QuizRepository = (*fakeQuizRepo)(nil)

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = r.store.id()
	for i := range quiz.Questions {
		quiz.Questions[i].ID = r.store.id()
		quiz.Questions[i].QuizID = quiz.ID
	}
	r.store.quizzes = append(r.store.quizzes, quiz)
	return nil
}

func (r *fakeQuizRepo) FindByCode(code string) (*model.Quiz, error) {
	quiz := r.store.quizByCode(code)
	if quiz == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *quiz
	clone.Questions = nil
	clone.Participants = nil
	return &clone, nil
}

func (r *fakeQuizRepo) FindByCodeWithQuestions(code string) (*model.Quiz, error) {
	quiz := r.store.quizByCode(code)
	if quiz == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *quiz
	clone.Questions = append([]model.Question(nil), quiz.Questions...)
	sort.SliceStable(clone.Questions, func(i, j int) bool {
		return clone.Questions[i].Position < clone.Questions[j].Position
	})
	clone.Participants = nil
	return &clone, nil
}

func (r *fakeQuizRepo) FindByCodeFull(code string) (*model.Quiz, error) {
	quiz, err := r.FindByCodeWithQuestions(code)
	if err != nil {
		return nil, err
	}
	quiz.Participants = r.store.participantsOf(quiz.ID)
	return quiz, nil
}

func (r *fakeQuizRepo) FindAllWithCounts() ([]repository.QuizWithCounts, error) {
	var out []repository.QuizWithCounts
	for _, q := range r.store.quizzes {
		out = append(out, repository.QuizWithCounts{
			Quiz:             *q,
			QuestionCount:    len(q.Questions),
			ParticipantCount: len(r.store.participantsOf(q.ID)),
		})
	}
	return out, nil
}

func (r *fakeQuizRepo) CodeExists(code string) (bool, error) {
	return r.store.quizByCode(code) != nil, nil
}

func (r *fakeQuizRepo) SetStarted(quizID uint, started bool) error {
	quiz := r.store.quizByID(quizID)
	if quiz == nil {
		return gorm.ErrRecordNotFound
	}
	quiz.Started = started
	return nil
}

func (r *fakeQuizRepo) ReplaceQuestions(quiz *model.Quiz, title string, questions []model.Question) error {
	stored := r.store.quizByID(quiz.ID)
	if stored == nil {
		return gorm.ErrRecordNotFound
	}
	for i := range questions {
		questions[i].ID = r.store.id()
		questions[i].QuizID = stored.ID
	}
	stored.Title = title
	stored.Questions = questions
	quiz.Title = title
	quiz.Questions = questions
	return nil
}

func (r *fakeQuizRepo) DeleteCascade(quiz *model.Quiz) error {
	for i, q := range r.store.quizzes {
		if q.ID == quiz.ID {
			r.store.quizzes = append(r.store.quizzes[:i], r.store.quizzes[i+1:]...)
			var kept []*model.Participant
			for _, p := range r.store.participants {
				if p.QuizID != quiz.ID {
					kept = append(kept, p)
				}
			}
			r.store.participants = kept
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeQuestionRepo struct {
	store *memStore
}

var _ repository.QuestionRepository = (*fakeQuestionRepo)(nil)

func (r *fakeQuestionRepo) CountByQuizID(quizID uint) (int64, error) {
	quiz := r.store.quizByID(quizID)
	if quiz == nil {
		return 0, nil
	}
	return int64(len(quiz.Questions)), nil
}

type fakeParticipantRepo struct {
	store *memStore
}

var _ repository.ParticipantRepository = (*fakeParticipantRepo)(nil)

func (r *fakeParticipantRepo) Create(participant *model.Participant) error {
	for _, p := range r.store.participants {
		if p.QuizID == participant.QuizID && p.Name == participant.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	participant.ID = r.store.id()
	stored := *participant
	r.store.participants = append(r.store.participants, &stored)
	return nil
}

func (r *fakeParticipantRepo) Save(participant *model.Participant) error {
	for i, p := range r.store.participants {
		if p.ID == participant.ID {
			stored := *participant
			r.store.participants[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeParticipantRepo) FindByQuizAndName(quizID uint, name string) (*model.Participant, error) {
	for _, p := range r.store.participants {
		if p.QuizID == quizID && p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// racingParticipantRepo models a concurrent writer sneaking a row in between
// the name precheck and the insert: the first missFinds lookups report no row
// even though the store holds one, so Create then trips the unique index.
type racingParticipantRepo struct {
	*fakeParticipantRepo
	missFinds int
}

func (r *racingParticipantRepo) FindByQuizAndName(quizID uint, name string) (*model.Participant, error) {
	if r.missFinds > 0 {
		r.missFinds--
		return nil, gorm.ErrRecordNotFound
	}
	return r.fakeParticipantRepo.FindByQuizAndName(quizID, name)
}

// newFakeRepos wires the three fakes over one store.
func newFakeRepos() (*fakeQuizRepo, *fakeQuestionRepo, *fakeParticipantRepo) {
	store := newMemStore()
	return &fakeQuizRepo{store: store}, &fakeQuestionRepo{store: store}, &fakeParticipantRepo{store: store}
}
