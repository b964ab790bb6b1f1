package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate-api/internal/model"
	"stargate-api/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("generate xlsx failed")
)

// ExportService 导出业务接口
type ExportService interface {
	// ExportDuties 导出人员任职履历为 xlsx，姓名精确匹配
	// 返回文件内容与建议文件名
	ExportDuties(ctx context.Context, name string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const dutySheet = "Duties"

// ═══════════════════════════════════════════════════════════
// ExportDuties
// ═══════════════════════════════════════════════════════════
//
// 表格布局：
//   - 第 1 行：标题 "<name>: duty history"，横向合并
//   - 第 2-5 行：当前军衔、当前职务、职业开始、职业结束
//   - 第 7 行：表头 | Rank | Duty Title | Start | End |
//   - 第 8 行起：每行一条任职，按开始日期倒序；未结束的任职显示 "current"

func (s *exportService) ExportDuties(ctx context.Context, name string) (*bytes.Buffer, string, error) {
	person, err := s.repo.Person.GetAstronautByName(ctx, name, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPersonNotFound
		}
		s.logger.Error("导出：查询人员失败", zap.String("name", name), zap.Error(err))
		return nil, "", persistenceError(err)
	}

	duties, err := s.repo.AstronautDuty.ListByPersonID(ctx, person.PersonID)
	if err != nil {
		s.logger.Error("导出：查询任职履历失败", zap.Uint("person_id", person.PersonID), zap.Error(err))
		return nil, "", persistenceError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dutySheet); err != nil {
		s.logger.Error("重命名工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	f.SetColWidth(dutySheet, "A", "A", 20)
	f.SetColWidth(dutySheet, "B", "B", 28)
	f.SetColWidth(dutySheet, "C", "D", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题
	f.SetCellValue(dutySheet, "A1", fmt.Sprintf("%s: duty history", person.Name))
	f.MergeCell(dutySheet, "A1", "D1")
	f.SetCellStyle(dutySheet, "A1", "A1", headerStyle)

	// 详情摘要
	summary := [][2]string{
		{"Current Rank", deref(person.CurrentRank)},
		{"Current Duty Title", deref(person.CurrentDutyTitle)},
		{"Career Start", deref(model.FormatDate(person.CareerStartDate))},
		{"Career End", deref(model.FormatDate(person.CareerEndDate))},
	}
	row := 2
	for _, kv := range summary {
		f.SetCellValue(dutySheet, cell("A", row), kv[0])
		f.SetCellValue(dutySheet, cell("B", row), kv[1])
		row++
	}

	// 表头
	row++
	for i, h := range []string{"Rank", "Duty Title", "Start", "End"} {
		f.SetCellValue(dutySheet, cell(colName(i), row), h)
	}
	f.SetCellStyle(dutySheet, cell("A", row), cell("D", row), headerStyle)

	// 任职记录
	for _, d := range duties {
		row++
		end := "current"
		if d.DutyEndDate != nil {
			end = d.DutyEndDate.Format(model.DateLayout)
		}
		f.SetCellValue(dutySheet, cell("A", row), d.Rank)
		f.SetCellValue(dutySheet, cell("B", row), d.DutyTitle)
		f.SetCellValue(dutySheet, cell("C", row), d.DutyStartDate.Format(model.DateLayout))
		f.SetCellValue(dutySheet, cell("D", row), end)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 xlsx 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("duties_%s.xlsx", fileSafe(person.Name)), nil
}

// ── 辅助函数 ──

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func fileSafe(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
