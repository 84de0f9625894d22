package knowledge

import "github.com/starford/scoop/internal/models"

// DefaultThemed seeds the themed knowledge base when no stored copy can be loaded.
// Topic keys are already normalized.
var DefaultThemed = []models.Entry{
	{Topic: "mutual fund", Definition: "A mutual fund is the ultimate Upper East Side investment clique, darling. Investors pool their money, and a financial Chuck Bass makes all the decisions—stocks, bonds, the whole portfolio. Everyone shares in the wins, the losses, and of course, the management fees. Because even in finance, nothing comes for free."},
	{Topic: "stock", Definition: "A stock is like holding a VIP pass to a company’s success—own a share, own a piece. The more you have, the more influence you wield, just like Blair Waldorf at Constance. Play it right, and your investment climbs faster than Serena’s social status. But beware, stocks can fall just as fast as they rise."},
	{Topic: "bond", Definition: "A bond is like lending cash to a government or corporation with the promise of getting paid back—with interest, of course. Less risky than stocks, but also less thrilling—think Nate Archibald over Chuck Bass. Old money adores bonds because they value stability over scandal."},
	{Topic: "401k", Definition: "A 401(k) is the trust fund you actually have to build yourself. Your employer sets it up, you contribute pre-tax dollars, and it grows until retirement—tax-free, of course. Think of it as securing your future penthouse, because even the elite plan ahead."},
	{Topic: "ira", Definition: "An IRA is your personal financial safety net, no trust fund required. Choose Traditional to delay taxes, or Roth to pay now and withdraw tax-free later. Either way, it’s like choosing between drama now or drama later—both have their perks."},
	{Topic: "etf", Definition: "An ETF is like a front-row seat to the stock market’s best players. It’s a mix of investments traded throughout the day—unlike mutual funds, which only trade once. Instant diversification, zero commitment. Sounds a lot like Serena’s dating strategy."},
	{Topic: "inflation", Definition: "Inflation is the reason your money buys less each year—think of it as designer prices creeping up season after season. Central banks fight it by raising interest rates, but too much control? That’s a fashion disaster waiting to happen."},
	{Topic: "compound interest", Definition: "Compound interest is the ultimate financial glow-up—earn interest on your interest, and watch your money multiply faster than Gossip Girl rumors. The longer you let it work, the bigger the payoff. Patience, darling, is a wealth-building virtue."},
	{Topic: "diversification", Definition: "Diversification is the golden rule of investing—never put all your social capital, or money, in one place. Stocks, bonds, real estate—mix it up. If one crashes, the others keep you afloat. The old-money elite have been doing this for generations."},
	{Topic: "credit score", Definition: "Your credit score is your financial reputation, darling. One bad move—missed payments, too much debt—and it haunts you like a Gossip Girl blast. Keep it high, and doors (and exclusive credit cards) open effortlessly."},
	{Topic: "roth ira", Definition: "A Roth IRA is like prepaying for luxury now so you can enjoy it tax-free later. You contribute already-taxed income, but future withdrawals? Totally untaxed. The Upper East Side calls that smart planning. New money should take notes."},
	{Topic: "bull market", Definition: "A bull market is the Wall Street version of Fashion Week—everyone’s thriving, stocks are soaring, and fortunes are multiplying. But like any party, it won’t last forever. The smartest investors know when to step out before the crash."},
	{Topic: "bear market", Definition: "A bear market is when stock prices drop at least 20%, and suddenly, everyone’s panicking. Think of it as social exile—reputations (and portfolios) take a hit, but the strong always make a comeback. The question is: are you patient enough to wait?"},
	{Topic: "liquidity", Definition: "Liquidity is how quickly you can turn assets into cash—because sometimes, you need an emergency shopping spree at Bergdorf’s. Cash? Instantly liquid. A Hamptons mansion? Not so much. The truly wealthy keep a balance of both."},
	{Topic: "dividend", Definition: "A dividend is passive income at its finest—companies sharing profits with shareholders like an elite allowance. Old money loves them because they don’t have to lift a finger. Blair Waldorf would definitely approve."},
	{Topic: "portfolio", Definition: "Your portfolio is your financial wardrobe—diverse, strategic, and tailored to your goals. Stocks for drama, bonds for stability, maybe some real estate for flair. The key? Balance. Even the most fashionable icons mix classic with trendy."},
	{Topic: "hedge fund", Definition: "A hedge fund is the VIP after-party of investing—exclusive, high-stakes, and only for the wealthy. They use complex strategies to win big, no matter the market. Risky? Absolutely. But the elite never play it safe."},
	{Topic: "private equity", Definition: "Private equity is next-level investing—buying entire companies instead of just shares. It’s like acquiring a whole fashion empire instead of just a designer handbag. Requires serious money, but the returns? Très chic."},
	{Topic: "venture capital", Definition: "Venture capital is betting on the next big thing before it’s cool—funding startups in hopes of discovering the next Uber or Instagram. High risk, but if it pays off? You’re looking at generational wealth. Very Bass Industries."},
	{Topic: "asset allocation", Definition: "Asset allocation is like curating the perfect guest list—balance is key. Stocks for excitement, bonds for stability, and cash for security. The mix depends on your risk tolerance—are you a safe Lily or a bold Chuck?"},
	{Topic: "market capitalization", Definition: "Market cap ranks companies like social status on the Upper East Side. Large caps are the Blairs and Serenas—established, powerful. Mid caps? Nates and Chucks—rising stars. Small caps? Jenny Humphreys—high risk, high reward."},
	{Topic: "dollar cost averaging", Definition: "Dollar cost averaging is playing the long game—investing steadily instead of all at once. It smooths out the highs and lows, so you’re not caught buying at the worst time. Think of it as effortless, drama-free investing."},
	{Topic: "index fund", Definition: "An index fund is the ultimate set-it-and-forget-it investment—like letting Dorota handle your social calendar. It tracks the market automatically, has low fees, and delivers solid returns. Even Warren Buffett approves."},
	{Topic: "rebalancing", Definition: "Rebalancing is the key to maintaining power—er, wealth. Over time, some investments overperform while others lag. Adjusting your portfolio keeps it in check. Even the elite refine their strategies regularly."},
	{Topic: "capital gain", Definition: "A capital gain is making money off an investment—buy low, sell high, cash in. Hold for over a year, and you get tax perks. The truly wealthy play the long game, just like in high society."},
	{Topic: "capital loss", Definition: "A capital loss is selling an investment for less than you paid—financial heartbreak, but sometimes useful. You can use it to lower your tax bill. Even a scandal can be spun into something beneficial."},
	{Topic: "tax loss harvesting", Definition: "Tax-loss harvesting is using one financial loss to offset another—think of it as damage control. Sell underperforming assets, claim the loss, and reinvest smartly. Even the IRS allows a well-executed redemption arc."},
	{Topic: "emergency fund", Definition: "An emergency fund is your financial safety net—cash reserves to avoid selling investments or taking on debt when life happens. Old money keeps them, new money forgets. Be old money, darling."},
	{Topic: "robo advisor", Definition: "A robo-advisor is like having an algorithm for a financial planner—no emotions, no drama, just automated investing based on your goals. Perfect for those who prefer efficiency over human error."},
	{Topic: "yield", Definition: "Yield is your investment’s performance score—how much you’re earning from dividends or interest. Higher yield? More rewards, but often more risk. The key is knowing when to go big and when to play it safe."},
}

// PlainDefinitions are the built-in plain-style definitions. They never change at runtime.
var PlainDefinitions = map[string]string{
	"mutual fund":           "A mutual fund is a pool of money collected from multiple investors that is professionally managed and invested in various securities like stocks, bonds, and other assets. The fund manager makes investment decisions on behalf of all investors, who share in the profits, losses, and expenses proportionally.",
	"stock":                 "A stock represents partial ownership in a company, giving shareholders a claim on its assets and earnings. Stocks are bought and sold on stock exchanges, and their value fluctuates based on company performance and market conditions.",
	"bond":                  "A bond is a fixed-income investment where an investor loans money to a government or corporation for a set period in exchange for periodic interest payments and the return of the principal amount at maturity.",
	"401k":                  "A 401(k) is a retirement savings plan sponsored by an employer, allowing employees to contribute pre-tax income, which grows tax-deferred until withdrawal, typically after retirement.",
	"ira":                   "An Individual Retirement Account (IRA) is a tax-advantaged account that helps individuals save for retirement. Traditional IRAs allow tax-deductible contributions, while Roth IRAs offer tax-free withdrawals.",
	"etf":                   "An Exchange-Traded Fund (ETF) is an investment fund that holds a collection of securities, such as stocks or bonds, and trades on stock exchanges like a stock. ETFs provide diversification and lower expense ratios compared to mutual funds.",
	"inflation":             "Inflation is the rate at which the general level of prices for goods and services rises over time, reducing the purchasing power of money.",
	"compound interest":     "Compound interest is the process where interest is added to the initial principal amount, and future interest is earned on both the principal and the accumulated interest, leading to exponential growth over time.",
	"diversification":       "Diversification is an investment strategy that involves spreading investments across different asset classes to reduce risk. A well-diversified portfolio minimizes potential losses by avoiding overconcentration in a single asset.",
	"credit score":          "A credit score is a numerical representation of a person’s creditworthiness, based on their credit history, debt levels, and payment behavior. It affects loan approvals, interest rates, and financial opportunities.",
	"roth ira":              "A Roth IRA is a retirement savings account where contributions are made with after-tax income, allowing tax-free withdrawals in retirement, provided certain conditions are met.",
	"bull market":           "A bull market refers to a prolonged period of rising stock prices, often driven by strong economic conditions, investor confidence, and increasing corporate profits.",
	"bear market":           "A bear market is a period when stock prices decline by at least 20% from recent highs, often due to economic downturns, declining investor confidence, or external financial shocks.",
	"liquidity":             "Liquidity refers to how easily an asset can be converted into cash without significantly affecting its price. Cash is the most liquid asset, while real estate and certain investments are less liquid.",
	"dividend":              "A dividend is a portion of a company's earnings distributed to shareholders, usually in cash or additional shares, as a reward for investing in the company.",
	"portfolio":             "A portfolio is a collection of financial assets, such as stocks, bonds, mutual funds, and real estate, that an investor owns. A well-balanced portfolio is key to managing risk and achieving financial goals.",
	"hedge fund":            "A hedge fund is an alternative investment vehicle that pools capital from accredited investors to employ various strategies, such as long-short positions and derivatives, to maximize returns while managing risk.",
	"private equity":        "Private equity refers to investments in privately held companies or buyouts of publicly traded companies, often involving direct investment strategies and active management to improve financial performance.",
	"venture capital":       "Venture capital is a form of private equity financing provided to startups and early-stage companies with high growth potential in exchange for equity ownership.",
	"asset allocation":      "Asset allocation is the process of dividing an investment portfolio among different asset categories, such as stocks, bonds, and cash, to balance risk and reward according to an investor’s goals and risk tolerance.",
	"market capitalization": "Market capitalization (market cap) is the total value of a company’s outstanding shares, calculated by multiplying the stock price by the number of shares outstanding. It indicates a company's size and market value.",
	"dollar cost averaging": "Dollar-cost averaging is an investment strategy where an investor regularly invests a fixed amount of money into a particular asset, regardless of its price, reducing the impact of market fluctuations over time.",
	"index fund":            "An index fund is a type of mutual fund or ETF designed to track the performance of a specific market index, such as the S&P 500. It provides broad market exposure and low costs.",
	"rebalancing":           "Rebalancing is the process of adjusting the allocation of assets in an investment portfolio to maintain the desired level of risk and return as market conditions change.",
	"capital gain":          "A capital gain is the profit earned when an asset, such as a stock or real estate, is sold for more than its purchase price. Long-term capital gains often receive favorable tax treatment.",
	"capital loss":          "A capital loss occurs when an asset is sold for less than its purchase price. Capital losses can offset capital gains for tax purposes, reducing taxable income.",
	"tax loss harvesting":   "Tax-loss harvesting is a strategy where investors sell securities at a loss to offset capital gains, reducing their overall tax liability while maintaining an investment strategy.",
	"emergency fund":        "An emergency fund is a reserve of liquid assets set aside to cover unexpected financial expenses, such as medical emergencies or job loss, providing financial security and stability.",
	"robo advisor":          "A robo-advisor is an automated platform that provides investment management services using algorithms to create and manage portfolios based on an investor's risk tolerance and goals.",
	"yield":                 "Yield refers to the income generated from an investment, typically expressed as a percentage. It includes interest from bonds and dividends from stocks, indicating an investment’s profitability.",
}
