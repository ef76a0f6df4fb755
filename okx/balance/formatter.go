package balance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/betbot/okx-balance/okx/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ccyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NonZeroSorted 过滤掉零余额明细，按总余额从大到小排序
// 稳定排序：余额相同的币种保持原有顺序
func NonZeroSorted(details []types.BalanceDetail) []types.BalanceDetail {
	nonZero := make([]types.BalanceDetail, 0, len(details))
	for _, d := range details {
		if d.CashBalance().IsPositive() {
			nonZero = append(nonZero, d)
		}
	}
	sort.SliceStable(nonZero, func(i, j int) bool {
		return nonZero[i].CashBalance().GreaterThan(nonZero[j].CashBalance())
	})
	return nonZero
}

// Render 格式化查询结果，便于阅读
// 区分三种情况：传输/解码失败、业务错误、成功（余额列表）
func Render(result types.QueryResult) string {
	var b strings.Builder

	if result.IsAPIError() {
		fmt.Fprintf(&b, "%s\n", errStyle.Render(
			fmt.Sprintf("❌ API错误 (代码: %s): %s", result.Code(), result.Msg())))
		return b.String()
	}
	if err := result.Err(); err != nil {
		fmt.Fprintf(&b, "%s\n", errStyle.Render(fmt.Sprintf("❌ 错误: %v", err)))
		return b.String()
	}

	accounts := result.Accounts()
	if len(accounts) == 0 {
		b.WriteString("📊 账户余额信息为空\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("💰 账户余额信息"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")

	for _, account := range accounts {
		if len(account.Details) == 0 {
			b.WriteString("   暂无余额信息\n")
			continue
		}

		details := NonZeroSorted(account.Details)
		if len(details) == 0 {
			b.WriteString("   所有币种余额为0\n")
			continue
		}

		for _, d := range details {
			fmt.Fprintf(&b, "   币种: %s\n", ccyStyle.Render(d.Ccy))
			fmt.Fprintf(&b, "   ├─ 总余额: %s\n", d.CashBal)
			fmt.Fprintf(&b, "   ├─ 可用余额: %s\n", d.AvailBal)
			fmt.Fprintf(&b, "   └─ 冻结余额: %s\n", d.FrozenBal)
			fmt.Fprintf(&b, "   %s\n", dimStyle.Render(strings.Repeat("-", 30)))
		}
	}

	return b.String()
}

// Print 渲染并输出到标准输出
func Print(result types.QueryResult) {
	fmt.Print(Render(result))
}
