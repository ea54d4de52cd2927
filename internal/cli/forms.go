package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// validateRequired rejects blank input for fields that must be filled.
func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("이 항목은 필수입니다")
	}
	return nil
}

// commonSettingsForm edits the settings shared by every category.
// All fields write directly into c.
func commonSettingsForm(c *domain.CommonSettings) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Mode]().
				Title("응답 모드").
				Options(
					huh.NewOption("학습 모드 (설명과 힌트 위주)", domain.ModeLearning),
					huh.NewOption("작업 모드 (결과물 위주)", domain.ModeTask),
				).
				Value(&c.Mode),
			huh.NewSelect[domain.ResultFormat]().
				Title("결과 형태").
				Options(
					huh.NewOption("개요만", domain.FormatOutline),
					huh.NewOption("전체 작성", domain.FormatFull),
				).
				Value(&c.ResultFormat),
			huh.NewConfirm().
				Title("출처 제안 포함").
				Value(&c.IncludeSources),
			huh.NewConfirm().
				Title("자기 검토 포함").
				Value(&c.IncludeSelfCheck),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("과목명").
				Placeholder("예: 현대사회와 윤리").
				Value(&c.SubjectName),
			huh.NewSelect[domain.MajorType]().
				Title("과목 구분").
				Options(
					huh.NewOption("전공", domain.MajorTypeMajor),
					huh.NewOption("교양", domain.MajorTypeGeneral),
					huh.NewOption("기타", domain.MajorTypeOther),
				).
				Value(&c.MajorType),
			huh.NewSelect[domain.GradeLevel]().
				Title("학년").
				Options(
					huh.NewOption("1학년", domain.GradeFirst),
					huh.NewOption("2학년", domain.GradeSecond),
					huh.NewOption("3학년", domain.GradeThird),
					huh.NewOption("4학년", domain.GradeFourth),
					huh.NewOption("대학원생", domain.GradeGraduate),
					huh.NewOption("기타", domain.GradeOther),
				).
				Value(&c.GradeLevel),
			huh.NewSelect[domain.ProfessorStyle]().
				Title("교수님 채점 성향").
				Options(
					huh.NewOption("엄격한 편", domain.ProfessorStrict),
					huh.NewOption("유연한 편", domain.ProfessorFlexible),
					huh.NewOption("잘 모름", domain.ProfessorUnknown),
				).
				Value(&c.ProfessorStyle),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("내 전공").
				Value(&c.UserMajor),
			huh.NewInput().
				Title("관심 분야").
				Value(&c.InterestAreas),
			huh.NewText().
				Title("평소 글쓰기 스타일 샘플 (선택)").
				Value(&c.WritingStyleSample),
		),
		huh.NewGroup(
			huh.NewSelect[domain.DeadlineType]().
				Title("마감 종류").
				Options(
					huh.NewOption("과제 마감", domain.DeadlineAssignment),
					huh.NewOption("시험", domain.DeadlineExam),
					huh.NewOption("기타", domain.DeadlineOther),
				).
				Value(&c.DeadlineType),
			huh.NewInput().
				Title("남은 시간").
				Placeholder("예: 3일").
				Value(&c.DeadlineValue),
			huh.NewConfirm().
				Title("학교 AI 사용 규정 반영").
				Value(&c.IncludeRegulation),
			huh.NewText().
				Title("AI 사용 규정 내용 (선택)").
				Value(&c.AIRegulation),
		),
		huh.NewGroup(
			huh.NewSelect[domain.TargetModel]().
				Title("사용할 AI").
				Options(
					huh.NewOption("ChatGPT", domain.ModelChatGPT),
					huh.NewOption("Gemini", domain.ModelGemini),
					huh.NewOption("기타", domain.ModelOther),
				).
				Value(&c.TargetModel),
			huh.NewInput().
				Title("기타 모델 이름 (선택)").
				Value(&c.TargetModelOther),
			huh.NewSelect[domain.Language]().
				Title("설명 언어").
				Options(
					huh.NewOption("한국어", domain.LangKorean),
					huh.NewOption("영어", domain.LangEnglish),
					huh.NewOption("혼합", domain.LangMixed),
					huh.NewOption("기타", domain.LangOther),
				).
				Value(&c.ExplanationLanguage),
			huh.NewSelect[domain.Language]().
				Title("결과물 언어").
				Options(
					huh.NewOption("한국어", domain.LangKorean),
					huh.NewOption("영어", domain.LangEnglish),
					huh.NewOption("혼합", domain.LangMixed),
					huh.NewOption("기타", domain.LangOther),
				).
				Value(&c.OutputLanguage),
			huh.NewSelect[domain.DifficultyLevel]().
				Title("난이도 수준").
				Options(
					huh.NewOption("고등학생 수준", domain.DifficultyHighSchool),
					huh.NewOption("학부생 수준", domain.DifficultyUndergraduate),
					huh.NewOption("대학원생 수준", domain.DifficultyGraduate),
					huh.NewOption("전문가 수준", domain.DifficultyExpert),
				).
				Value(&c.DifficultyLevel),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

// stageForm edits the three work-phase toggles. They are independent;
// all off is a valid selection.
func stageForm(s *domain.StageSelection) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("자료 조사 단계").
				Value(&s.Research),
			huh.NewConfirm().
				Title("개요 작성 단계").
				Value(&s.Outline),
			huh.NewConfirm().
				Title("전체 작성 단계").
				Value(&s.FullWrite),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

// attachmentForm edits the uploaded-file note appended to the prompt.
func attachmentForm(a *domain.FileAttachment) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("첨부 파일 있음").
				Value(&a.HasAttachment),
			huh.NewText().
				Title("첨부 파일 설명").
				Placeholder("예: 강의 노트 3주차 PDF").
				Value(&a.Description),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

// saveForm collects title and notes for saving the current prompt.
// The title is required.
func saveForm(title, notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("저장 제목").
				Validate(validateRequired).
				Value(title),
			huh.NewInput().
				Title("메모 (선택)").
				Value(notes),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}
